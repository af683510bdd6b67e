package dto

import "time"

// PartyResponse represents a case party in API responses.
type PartyResponse struct {
	ID            string    `json:"id"`
	CourtID       string    `json:"courtId"`
	CaseID        string    `json:"caseId"`
	Name          string    `json:"name"`
	PartyType     string    `json:"partyType"`
	PartyRole     string    `json:"partyRole"`
	Status        string    `json:"status"`
	ServiceMethod string    `json:"serviceMethod"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	NefSMSOptIn   bool      `json:"nefSmsOptIn"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AddPartyRequest is the request body for attaching a party to a case.
type AddPartyRequest struct {
	Name        string  `json:"name" binding:"required,max=500"`
	PartyType   string  `json:"partyType" binding:"required,oneof=INDIVIDUAL ORGANIZATION GOVERNMENT"`
	PartyRole   string  `json:"partyRole" binding:"required,oneof=PLAINTIFF DEFENDANT APPELLANT APPELLEE INTERVENOR THIRD_PARTY"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	NefSMSOptIn bool    `json:"nefSmsOptIn"`
}

// RepresentationResponse represents an attorney appearance in API responses.
type RepresentationResponse struct {
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

// AddRepresentationRequest is the request body for recording an attorney's
// appearance for a party.
type AddRepresentationRequest struct {
	PartyID     string `json:"partyId" binding:"required,uuid"`
	AttorneyID  string `json:"attorneyId" binding:"required"`
	AttorneyBar string `json:"attorneyBar" binding:"required"`
	LeadCounsel bool   `json:"leadCounsel"`
}
