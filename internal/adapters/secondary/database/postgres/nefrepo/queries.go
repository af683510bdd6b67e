package nefrepo

const (
	nefColumns = `
		id, court_id, case_id, filing_id, docket_entry_id, status, recipient_snapshot,
		html_snapshot, created_at, delivered_at`

	queryInsertNef = `
		INSERT INTO docket.nefs (
			court_id, case_id, filing_id, docket_entry_id, status, recipient_snapshot,
			html_snapshot, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	queryFindNefByID = `
		SELECT ` + nefColumns + `
		FROM docket.nefs
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindNefByFiling = `
		SELECT ` + nefColumns + `
		FROM docket.nefs
		WHERE court_id = $1 AND case_id = $2 AND filing_id = $3`

	queryUpdateNef = `
		UPDATE docket.nefs
		SET status = $2, recipient_snapshot = $3, delivered_at = $4
		WHERE court_id = $5 AND case_id = $6 AND id = $1`
)
