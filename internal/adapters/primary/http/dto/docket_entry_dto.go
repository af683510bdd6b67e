package dto

import "time"

// DocketEntryResponse represents a docket entry in API responses.
type DocketEntryResponse struct {
	ID                  string    `json:"id"`
	CourtID             string    `json:"courtId"`
	CaseID              string    `json:"caseId"`
	EntryNumber         int       `json:"entryNumber"`
	EntryType           string    `json:"entryType"`
	Description         string    `json:"description"`
	DocumentID          *string   `json:"documentId,omitempty"`
	EnteredBy           string    `json:"enteredBy"`
	EntryDate           time.Time `json:"entryDate"`
	IsSealed            bool      `json:"isSealed"`
	IsExParte           bool      `json:"isExParte"`
	SealingLevel        string    `json:"sealingLevel"`
	RelatedEntryNumbers []int     `json:"relatedEntryNumbers,omitempty"`
	ServiceListPartyIDs []string  `json:"serviceListPartyIds,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateDocketEntryRequest is the request body for a text-only docket entry.
type CreateDocketEntryRequest struct {
	EntryType   string `json:"entryType" binding:"required,oneof=FILING ORDER MINUTE_ENTRY NOTICE TEXT_ONLY"`
	Description string `json:"description" binding:"required,max=4000"`
}

// Validate checks the request beyond what binding tags already enforce.
func (r *CreateDocketEntryRequest) Validate() error {
	if r.Description == "" {
		return ErrRequired
	}
	return nil
}

// LinkDocumentRequest is the request body for linking a document to an entry.
type LinkDocumentRequest struct {
	DocumentID string `json:"documentId" binding:"required,uuid"`
}

// DocketEntryListRequest is the query-string shape for listing docket entries.
type DocketEntryListRequest struct {
	Page      int    `form:"page,default=1"`
	PerPage   int    `form:"perPage,default=50"`
	EntryType string `form:"entryType"`
	Sealed    *bool  `form:"sealed"`
	Search    string `form:"q"`
}

// DocketEntrySearchRequest is the query-string shape for the cross-case
// docket search.
type DocketEntrySearchRequest struct {
	Page      int    `form:"page,default=1"`
	PerPage   int    `form:"perPage,default=50"`
	CaseID    string `form:"caseId"`
	EntryType string `form:"entryType"`
	Text      string `form:"text"`
}

// PaginatedDocketEntryResponse is a page of docket entries.
type PaginatedDocketEntryResponse struct {
	Data       []*DocketEntryResponse `json:"data"`
	Pagination PaginationMeta         `json:"pagination"`
}

// DocketStatisticsResponse reports aggregate entry counts for a case.
type DocketStatisticsResponse struct {
	CaseID        string         `json:"caseId"`
	TotalEntries  int            `json:"totalEntries"`
	SealedEntries int            `json:"sealedEntries"`
	ByEntryType   map[string]int `json:"byEntryType"`
}

// DocketSheetResponse is the denormalized per-case projection.
type DocketSheetResponse struct {
	Case    *CaseResponse          `json:"case"`
	Entries []*DocketEntryResponse `json:"entries"`
	Parties []*PartyResponse       `json:"parties"`
}
