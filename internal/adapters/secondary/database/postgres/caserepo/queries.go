package caserepo

const (
	queryCreate = `
		INSERT INTO docket.cases (court_id, case_number, title, case_type, status, assigned_judge, filed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	caseColumns = `id, court_id, case_number, title, case_type, status, assigned_judge, filed_at, closed_at, created_at, updated_at`

	queryFindByID = `
		SELECT ` + caseColumns + `
		FROM docket.cases
		WHERE court_id = $1 AND id = $2`

	queryFindByCaseNumber = `
		SELECT ` + caseColumns + `
		FROM docket.cases
		WHERE court_id = $1 AND case_number = $2`

	// queryFindByCourt filters by status/type only when the corresponding
	// argument is non-empty, and by case-insensitive title/number search.
	queryFindByCourt = `
		SELECT ` + caseColumns + `
		FROM docket.cases
		WHERE court_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR case_type = $3)
		  AND ($4 = '' OR title ILIKE '%' || $4 || '%' OR case_number ILIKE '%' || $4 || '%')
		ORDER BY filed_at DESC
		LIMIT $5 OFFSET $6`

	queryUpdate = `
		UPDATE docket.cases
		SET status = $2, assigned_judge = $3, closed_at = $4, updated_at = $5
		WHERE id = $1`

	queryCountByCourt = `
		SELECT COUNT(*) FROM docket.cases WHERE court_id = $1`
)
