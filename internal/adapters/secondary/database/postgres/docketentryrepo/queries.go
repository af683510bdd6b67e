package docketentryrepo

const (
	queryAdvisoryLock = `SELECT pg_advisory_xact_lock(hashtext($1))`

	queryNextEntryNumber = `
		SELECT COALESCE(MAX(entry_number), 0) + 1
		FROM docket.docket_entries
		WHERE case_id = $1`

	queryInsert = `
		INSERT INTO docket.docket_entries (
			court_id, case_id, entry_number, entry_type, description, document_id,
			entered_by, entry_date, is_sealed, is_ex_parte, sealing_level,
			related_entry_numbers, service_list_party_ids, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	entryColumns = `
		id, court_id, case_id, entry_number, entry_type, description, document_id,
		entered_by, entry_date, is_sealed, is_ex_parte, sealing_level,
		related_entry_numbers, service_list_party_ids, created_at`

	queryFindByID = `
		SELECT ` + entryColumns + `
		FROM docket.docket_entries
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindByCase = `
		SELECT ` + entryColumns + `
		FROM docket.docket_entries
		WHERE court_id = $1 AND case_id = $2
		  AND ($3 = '' OR entry_type = $3)
		  AND ($4::boolean IS NULL OR is_sealed = $4)
		  AND ($5 = '' OR description ILIKE '%' || $5 || '%')
		ORDER BY entry_number ASC
		LIMIT $6 OFFSET $7`

	querySearch = `
		SELECT ` + entryColumns + `
		FROM docket.docket_entries
		WHERE court_id = $1
		  AND ($2 = '' OR case_id = $2)
		  AND ($3 = '' OR entry_type = $3)
		  AND ($4 = '' OR description ILIKE '%' || $4 || '%')
		ORDER BY entry_date DESC
		LIMIT $5 OFFSET $6`

	queryLinkDocument = `
		UPDATE docket.docket_entries
		SET document_id = $4
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryStatisticsByType = `
		SELECT entry_type, COUNT(*)
		FROM docket.docket_entries
		WHERE court_id = $1 AND case_id = $2
		GROUP BY entry_type`

	querySealedCount = `
		SELECT COUNT(*) FROM docket.docket_entries
		WHERE court_id = $1 AND case_id = $2 AND is_sealed = TRUE`

	queryHasLinkedFiling = `
		SELECT EXISTS(
			SELECT 1 FROM docket.filings
			WHERE court_id = $1 AND case_id = $2 AND docket_entry_id = $3
		)`

	queryDelete = `
		DELETE FROM docket.docket_entries
		WHERE court_id = $1 AND case_id = $2 AND id = $3`
)
