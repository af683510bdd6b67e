package filingrepo

const (
	queryAdvisoryLock = `SELECT pg_advisory_xact_lock(hashtext($1))`

	queryInsertFiling = `
		INSERT INTO docket.filings (
			court_id, case_id, filing_type, filed_by, filed_date, status,
			validation_issues, document_id, docket_entry_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	filingColumns = `
		id, court_id, case_id, filing_type, filed_by, filed_date, status,
		validation_issues, document_id, docket_entry_id, created_at`

	filingListColumns = `
		id, court_id, case_id, filing_type, filed_by, filed_date, status,
		document_id, docket_entry_id, created_at`

	queryFindByID = `
		SELECT ` + filingColumns + `
		FROM docket.filings
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindByCase = `
		SELECT ` + filingListColumns + `
		FROM docket.filings
		WHERE court_id = $1 AND case_id = $2
			AND ($3 = '' OR status = $3)
			AND ($4 = '' OR filing_type = $4)
			AND ($5 = '' OR filed_by = $5)
		ORDER BY filed_date DESC
		LIMIT $6 OFFSET $7`

	queryUpdateFiling = `
		UPDATE docket.filings
		SET status = $2, validation_issues = $3, document_id = $4, docket_entry_id = $5
		WHERE court_id = $6 AND case_id = $7 AND id = $1`

	queryInsertDocument = `
		INSERT INTO docket.documents (
			court_id, case_id, title, document_type, storage_key, checksum, file_size,
			content_type, is_sealed, sealing_level, seal_reason_code, seal_motion_id,
			uploaded_by, source_attachment_id, replaced_by_document_id, is_stricken, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	queryInsertServiceRecord = `
		INSERT INTO docket.service_records (
			court_id, case_id, document_id, party_id, service_method, served_by,
			successful, proof_of_service_filed, attempts, certificate_text, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	queryInsertNef = `
		INSERT INTO docket.nefs (
			court_id, case_id, filing_id, docket_entry_id, status, recipient_snapshot,
			html_snapshot, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
)
