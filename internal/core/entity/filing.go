package entity

import (
	"encoding/json"
	"time"
)

// Filing is an electronic filing submitted to the court. It starts as
// Pending, moves to Filed once the pipeline commits its Document and
// DocketEntry, and is terminally Accepted or Rejected by court staff.
type Filing struct {
	ID                string          `json:"id"`
	CourtID           string          `json:"courtId"`
	CaseID            string          `json:"caseId"`
	FilingType        FilingType      `json:"filingType"`
	FiledBy           string          `json:"filedBy"`
	FiledDate         time.Time       `json:"filedDate"`
	Status            FilingStatus    `json:"status"`
	ValidationIssues  json.RawMessage `json:"validationIssues,omitempty"`
	DocumentID        *string         `json:"documentId,omitempty"`
	DocketEntryID     *string         `json:"docketEntryId,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// NewFiling creates a pending filing prior to pipeline submission.
func NewFiling(courtID, caseID string, filingType FilingType, filedBy string) *Filing {
	now := time.Now().UTC()
	return &Filing{
		CourtID:    courtID,
		CaseID:     caseID,
		FilingType: filingType,
		FiledBy:    filedBy,
		FiledDate:  now,
		Status:     FilingStatusPending,
		CreatedAt:  now,
	}
}

// MarkFiled moves the filing to Filed once its Document and DocketEntry have
// been committed in the same transaction, recording their IDs.
func (f *Filing) MarkFiled(documentID, docketEntryID string) error {
	if !f.Status.CanTransitionTo(FilingStatusFiled) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusFiled
	f.DocumentID = &documentID
	f.DocketEntryID = &docketEntryID
	return nil
}

// FlagForReview moves a filed submission into clerk review.
func (f *Filing) FlagForReview() error {
	if !f.Status.CanTransitionTo(FilingStatusUnderReview) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusUnderReview
	return nil
}

// Accept terminally accepts the filing under review.
func (f *Filing) Accept() error {
	if !f.Status.CanTransitionTo(FilingStatusAccepted) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusAccepted
	return nil
}

// Reject terminally rejects the filing, recording the reason as validation
// issues so the filer can see why.
func (f *Filing) Reject(issues json.RawMessage) error {
	if !f.Status.CanTransitionTo(FilingStatusRejected) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusRejected
	f.ValidationIssues = issues
	return nil
}

// Return sends the filing back to the filer for correction.
func (f *Filing) Return(issues json.RawMessage) error {
	if !f.Status.CanTransitionTo(FilingStatusReturned) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusReturned
	f.ValidationIssues = issues
	return nil
}

// Resubmit moves a returned filing back to Pending.
func (f *Filing) Resubmit() error {
	if !f.Status.CanTransitionTo(FilingStatusPending) {
		return ErrInvalidFilingStatus
	}
	f.Status = FilingStatusPending
	return nil
}

// FilingListItem is the lightweight shape returned from list endpoints.
type FilingListItem struct {
	ID            string     `json:"id"`
	CourtID       string     `json:"courtId"`
	CaseID        string     `json:"caseId"`
	FilingType    FilingType `json:"filingType"`
	FiledBy       string     `json:"filedBy"`
	FiledDate     time.Time  `json:"filedDate"`
	Status        FilingStatus `json:"status"`
	DocumentID    *string    `json:"documentId,omitempty"`
	DocketEntryID *string    `json:"docketEntryId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
