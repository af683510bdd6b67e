package partyrepo

const (
	partyColumns = `
		id, court_id, case_id, name, party_type, party_role, status, service_method,
		email, phone, nef_sms_opt_in, created_at`

	queryInsertParty = `
		INSERT INTO docket.parties (
			court_id, case_id, name, party_type, party_role, status, service_method,
			email, phone, nef_sms_opt_in, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	queryFindPartyByID = `
		SELECT ` + partyColumns + `
		FROM docket.parties
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindPartiesByCase = `
		SELECT ` + partyColumns + `
		FROM docket.parties
		WHERE court_id = $1 AND case_id = $2
		ORDER BY created_at ASC`

	queryFindActivePartiesByCase = `
		SELECT ` + partyColumns + `
		FROM docket.parties
		WHERE court_id = $1 AND case_id = $2 AND status = 'ACTIVE'
		ORDER BY created_at ASC`

	queryUpdateParty = `
		UPDATE docket.parties
		SET status = $2, service_method = $3, email = $4, phone = $5, nef_sms_opt_in = $6
		WHERE court_id = $7 AND case_id = $8 AND id = $1`

	representationColumns = `
		id, court_id, case_id, party_id, attorney_id, attorney_bar, lead_counsel,
		started_at, ended_at`

	queryInsertRepresentation = `
		INSERT INTO docket.representations (
			court_id, case_id, party_id, attorney_id, attorney_bar, lead_counsel,
			started_at, ended_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	queryFindRepresentationByID = `
		SELECT ` + representationColumns + `
		FROM docket.representations
		WHERE court_id = $1 AND case_id = $2 AND id = $3`

	queryFindRepresentationsByParty = `
		SELECT ` + representationColumns + `
		FROM docket.representations
		WHERE court_id = $1 AND case_id = $2 AND party_id = $3
		ORDER BY started_at ASC`

	queryFindActiveRepresentationsByAttorney = `
		SELECT ` + representationColumns + `
		FROM docket.representations
		WHERE court_id = $1 AND case_id = $2 AND attorney_id = $3 AND ended_at IS NULL`

	queryUpdateRepresentation = `
		UPDATE docket.representations
		SET ended_at = $2
		WHERE court_id = $3 AND case_id = $4 AND id = $1`
)
