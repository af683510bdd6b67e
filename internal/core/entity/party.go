package entity

import "time"

// Party is a litigant in a case's caption.
type Party struct {
	ID          string      `json:"id"`
	CourtID     string      `json:"courtId"`
	CaseID      string      `json:"caseId"`
	Name        string      `json:"name"`
	PartyType   PartyType   `json:"partyType"`
	PartyRole   PartyRole   `json:"partyRole"`
	Status      PartyStatus   `json:"status"`
	ServiceMethod ServiceMethod `json:"serviceMethod"`
	Email       *string     `json:"email,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	NefSMSOptIn bool        `json:"nefSmsOptIn"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewParty creates an active party entry.
func NewParty(courtID, caseID, name string, partyType PartyType, role PartyRole) *Party {
	return &Party{
		CourtID:   courtID,
		CaseID:    caseID,
		Name:      name,
		PartyType:     partyType,
		PartyRole:     role,
		Status:        PartyStatusActive,
		ServiceMethod: ServiceMethodNEF,
		CreatedAt:     time.Now().UTC(),
	}
}

// IsActive reports whether the party should still be served notices.
func (p *Party) IsActive() bool {
	return p.Status == PartyStatusActive
}

// Validate checks structural invariants independent of persistence.
func (p *Party) Validate() error {
	if p.CourtID == "" || p.CaseID == "" || p.Name == "" {
		return ErrRequiredField
	}
	if !p.PartyType.IsValid() {
		return ErrInvalidPartyType
	}
	if !p.PartyRole.IsValid() {
		return ErrInvalidPartyRole
	}
	return nil
}

// Representation links an attorney (identified by the auth principal's
// subject) to a Party they represent in a case.
type Representation struct {
	ID          string     `json:"id"`
	CourtID     string     `json:"courtId"`
	CaseID      string     `json:"caseId"`
	PartyID     string     `json:"partyId"`
	AttorneyID  string     `json:"attorneyId"`
	AttorneyBar string     `json:"attorneyBar"`
	LeadCounsel bool       `json:"leadCounsel"`
	StartedAt   time.Time  `json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
}

// IsActive reports whether the attorney remains counsel of record.
func (r *Representation) IsActive() bool {
	return r.EndedAt == nil
}

// Withdraw ends the representation.
func (r *Representation) Withdraw() {
	now := time.Now().UTC()
	r.EndedAt = &now
}
