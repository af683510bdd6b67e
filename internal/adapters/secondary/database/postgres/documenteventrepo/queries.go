package documenteventrepo

const (
	queryInsert = `
		INSERT INTO docket.document_events (court_id, case_id, document_id, event_type, actor, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	eventColumns = `id, court_id, case_id, document_id, event_type, actor, detail, created_at`

	queryFindByDocument = `
		SELECT ` + eventColumns + `
		FROM docket.document_events
		WHERE court_id = $1 AND case_id = $2 AND document_id = $3
		ORDER BY created_at ASC`

	queryFindPromotedForAttachment = `
		SELECT ` + eventColumns + `
		FROM docket.document_events
		WHERE court_id = $1 AND case_id = $2 AND event_type = 'promoted' AND detail->>'attachment_id' = $3
		LIMIT 1`

	queryFindByCase = `
		SELECT ` + eventColumns + `
		FROM docket.document_events
		WHERE court_id = $1 AND case_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
)
