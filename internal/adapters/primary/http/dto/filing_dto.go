package dto

import "time"

// FilingResponse represents a filing in API responses.
type FilingResponse struct {
	ID               string     `json:"id"`
	CourtID          string     `json:"courtId"`
	CaseID           string     `json:"caseId"`
	FilingType       string     `json:"filingType"`
	FiledBy          string     `json:"filedBy"`
	FiledDate        time.Time  `json:"filedDate"`
	Status           string     `json:"status"`
	ValidationIssues []ValidationIssueResponse `json:"validationIssues,omitempty"`
	DocumentID       *string    `json:"documentId,omitempty"`
	DocketEntryID    *string    `json:"docketEntryId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// FilingListItemResponse is the lightweight shape returned from list endpoints.
type FilingListItemResponse struct {
	ID            string    `json:"id"`
	FilingType    string    `json:"filingType"`
	FiledBy       string    `json:"filedBy"`
	FiledDate     time.Time `json:"filedDate"`
	Status        string    `json:"status"`
	DocumentID    *string   `json:"documentId,omitempty"`
	DocketEntryID *string   `json:"docketEntryId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ValidateFilingRequest is the request body for a dry-run validation.
type ValidateFilingRequest struct {
	FilingType   string  `json:"filingType" binding:"required"`
	DocumentType string  `json:"documentType" binding:"required"`
	UploadID     *string `json:"uploadId,omitempty"`
	IsSealed     *bool   `json:"isSealed,omitempty"`
	SealingLevel *string `json:"sealingLevel,omitempty"`
	ReasonCode   *string `json:"reasonCode,omitempty"`
}

// SubmitFilingRequest is the request body for submitting a filing.
type SubmitFilingRequest struct {
	DocumentType string  `json:"documentType" binding:"required"`
	Title        string  `json:"title" binding:"required,max=500"`
	UploadID     *string `json:"uploadId,omitempty"`
	IsSealed     *bool   `json:"isSealed,omitempty"`
	SealingLevel *string `json:"sealingLevel,omitempty"`
	ReasonCode   *string `json:"reasonCode,omitempty"`
}

// RejectFilingRequest is the request body for rejecting a filing, carrying
// the reasons the clerk is returning to the filer.
type RejectFilingRequest struct {
	Issues []ValidationIssueRequest `json:"issues" binding:"required,min=1,dive"`
}

// ValidationIssueRequest is a single field-level issue supplied by a clerk
// rejecting a filing.
type ValidationIssueRequest struct {
	Field    string `json:"field" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Severity string `json:"severity" binding:"required,oneof=ERROR WARNING"`
}

// FilingListRequest is the query-string shape for listing filings.
type FilingListRequest struct {
	Page       int    `form:"page,default=1"`
	PerPage    int    `form:"perPage,default=25"`
	Status     string `form:"status"`
	FilingType string `form:"filingType"`
	FiledBy    string `form:"filedBy"`
}

// PaginatedFilingResponse is a page of filing list items.
type PaginatedFilingResponse struct {
	Data       []*FilingListItemResponse `json:"data"`
	Pagination PaginationMeta            `json:"pagination"`
}
