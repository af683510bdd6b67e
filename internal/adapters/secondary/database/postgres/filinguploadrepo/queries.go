package filinguploadrepo

const (
	queryInsert = `
		INSERT INTO docket.filing_uploads (
			court_id, case_id, purpose, storage_key, filename, content_type, file_size,
			checksum, initiated_by, finalized, expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	uploadColumns = `
		id, court_id, case_id, purpose, storage_key, filename, content_type,
		file_size, checksum, initiated_by, finalized, expires_at, created_at, finalized_at`

	queryFindByID = `
		SELECT ` + uploadColumns + `
		FROM docket.filing_uploads
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryUpdate = `
		UPDATE docket.filing_uploads
		SET checksum = $2, finalized = $3, finalized_at = $4
		WHERE id = $1`

	queryFindExpiredUnfinalized = `
		SELECT ` + uploadColumns + `
		FROM docket.filing_uploads
		WHERE finalized = false AND expires_at < now()
		ORDER BY expires_at ASC
		LIMIT $1`

	queryDeleteUpload = `
		DELETE FROM docket.filing_uploads
		WHERE court_id = $1 AND case_id = $2 AND id = $3`
)
