package dto

import "time"

// CaseResponse represents a case in API responses.
type CaseResponse struct {
	ID            string     `json:"id"`
	CourtID       string     `json:"courtId"`
	CaseNumber    string     `json:"caseNumber"`
	Title         string     `json:"title"`
	CaseType      string     `json:"caseType"`
	Status        string     `json:"status"`
	AssignedJudge *string    `json:"assignedJudge,omitempty"`
	FiledAt       time.Time  `json:"filedAt"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// CreateCaseRequest is the request body for opening a case.
type CreateCaseRequest struct {
	CaseNumber string `json:"caseNumber" binding:"required,max=64"`
	Title      string `json:"title" binding:"required,max=500"`
	CaseType   string `json:"caseType" binding:"required,oneof=CIVIL CRIMINAL BANKRUPTCY APPEAL MAGISTRATE"`
}

// Validate checks the request beyond what binding tags already enforce.
func (r *CreateCaseRequest) Validate() error {
	if r.CaseNumber == "" || r.Title == "" {
		return ErrRequired
	}
	return nil
}

// TransitionCaseRequest is the request body for moving a case's status.
type TransitionCaseRequest struct {
	Target string `json:"target" binding:"required,oneof=OPEN STAYED CLOSED REOPENED"`
}

// CaseListRequest is the query-string shape for listing cases.
type CaseListRequest struct {
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"perPage,default=25"`
	Status  string `form:"status"`
	Type    string `form:"type"`
	Search  string `form:"q"`
}

// PaginatedCaseResponse is a page of cases.
type PaginatedCaseResponse struct {
	Data       []*CaseResponse `json:"data"`
	Pagination PaginationMeta  `json:"pagination"`
}
