package servicerecordrepo

const (
	serviceRecordColumns = `
		id, court_id, case_id, document_id, party_id, service_method, served_by,
		successful, proof_of_service_filed, attempts, certificate_text, created_at`

	queryInsertServiceRecord = `
		INSERT INTO docket.service_records (
			court_id, case_id, document_id, party_id, service_method, served_by,
			successful, proof_of_service_filed, attempts, certificate_text, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	queryFindByDocument = `
		SELECT ` + serviceRecordColumns + `
		FROM docket.service_records
		WHERE court_id = $1 AND case_id = $2 AND document_id = $3
		ORDER BY created_at ASC`

	queryFindServiceRecordByID = `
		SELECT ` + serviceRecordColumns + `
		FROM docket.service_records
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryUpdateServiceRecord = `
		UPDATE docket.service_records
		SET served_by = $2, successful = $3, proof_of_service_filed = $4, attempts = $5, certificate_text = $6
		WHERE court_id = $7 AND case_id = $8 AND id = $1`
)
