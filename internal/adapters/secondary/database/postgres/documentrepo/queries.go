package documentrepo

const (
	queryInsert = `
		INSERT INTO docket.documents (
			court_id, case_id, title, document_type, storage_key, checksum, file_size, content_type,
			is_sealed, sealing_level, seal_reason_code, seal_motion_id, uploaded_by,
			source_attachment_id, replaced_by_document_id, is_stricken, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	documentColumns = `
		id, court_id, case_id, title, document_type, storage_key, checksum, file_size, content_type,
		is_sealed, sealing_level, seal_reason_code, seal_motion_id, uploaded_by,
		source_attachment_id, replaced_by_document_id, is_stricken, created_at`

	queryFindByID = `
		SELECT ` + documentColumns + `
		FROM docket.documents
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindByCase = `
		SELECT ` + documentColumns + `
		FROM docket.documents
		WHERE court_id = $1 AND case_id = $2
		  AND ($3 = '' OR document_type = $3)
		  AND ($4::boolean IS NULL OR is_sealed = $4)
		  AND ($5 OR is_stricken = FALSE)
		  AND ($6 = '' OR title ILIKE '%' || $6 || '%')
		ORDER BY created_at DESC
		LIMIT $7 OFFSET $8`

	queryUpdate = `
		UPDATE docket.documents
		SET is_sealed = $2, sealing_level = $3, seal_reason_code = $4, seal_motion_id = $5,
		    replaced_by_document_id = $6, is_stricken = $7
		WHERE id = $1`

	queryInsertAttachment = `
		INSERT INTO docket.docket_attachments (
			court_id, case_id, docket_entry_id, filename, storage_key, content_type, file_size,
			checksum, uploaded_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	attachmentColumns = `
		id, court_id, case_id, docket_entry_id, filename, storage_key,
		content_type, file_size, checksum, promoted_to_document_id, uploaded_by, created_at`

	queryFindAttachmentByID = `
		SELECT ` + attachmentColumns + `
		FROM docket.docket_attachments
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindAttachmentsByEntry = `
		SELECT ` + attachmentColumns + `
		FROM docket.docket_attachments
		WHERE court_id = $1 AND case_id = $2 AND docket_entry_id = $3
		ORDER BY created_at ASC`

	queryUpdateAttachment = `
		UPDATE docket.docket_attachments
		SET promoted_to_document_id = $2
		WHERE id = $1`
)
