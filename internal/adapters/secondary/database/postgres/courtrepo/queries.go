package courtrepo

const (
	queryFindByCode = `
		SELECT id, court_name, court_code, created_at
		FROM docket.courts
		WHERE court_code = $1`

	queryFindByID = `
		SELECT id, court_name, court_code, created_at
		FROM docket.courts
		WHERE id = $1`

	queryList = `
		SELECT id, court_name, court_code, created_at
		FROM docket.courts
		ORDER BY court_name`
)
