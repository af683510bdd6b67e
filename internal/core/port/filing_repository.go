package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// FilingFilters contains optional filters for filing queries.
type FilingFilters struct {
	Status     *entity.FilingStatus
	FilingType *entity.FilingType
	FiledBy    *string
	Limit      int
	Offset     int
}

// FilingRepository defines the interface for filing data access.
type FilingRepository interface {
	// Create creates a draft filing.
	Create(ctx context.Context, f *entity.Filing) (string, error)

	// FindByID finds a filing by ID within a court/case.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Filing, error)

	// FindByCase lists filings in a case with optional filters.
	FindByCase(ctx context.Context, courtID, caseID string, filters FilingFilters) ([]*entity.FilingListItem, error)

	// Update persists changes to a filing (submit/accept/reject transitions).
	Update(ctx context.Context, f *entity.Filing) error

	// SubmitPipeline runs the full filing submission sequence — document
	// creation, next-entry-number docket entry, filing submission, service
	// record seeding, and NEF creation — as a single transaction serialized
	// per case via an advisory lock. The NEF delivery job is enqueued inside
	// the same transaction, so it is only visible to workers once this
	// commits.
	SubmitPipeline(ctx context.Context, input SubmitPipelineInput) (*SubmitPipelineResult, error)
}

// SubmitPipelineInput carries every entity the Filing Submission Pipeline
// needs to commit atomically.
type SubmitPipelineInput struct {
	Filing           *entity.Filing
	Document         *entity.Document
	EntryType        entity.EntryType
	EntryDescription string
	EnteredBy        string
	Recipients       []entity.NefRecipient
	ActiveParties    []ActiveServiceParty
}

// EntrySealing mirrors the document's sealing state onto the docket entry
// created alongside it, per the Filing Submission Pipeline's step 6.
func (i SubmitPipelineInput) EntrySealing() (bool, entity.SealingLevel) {
	return i.Document.IsSealed, i.Document.SealingLevel
}

// ActiveServiceParty carries the identity and service method of an active
// party at filing-submission time, so the pipeline can seed each party's
// ServiceRecord according to how they are actually served.
type ActiveServiceParty struct {
	PartyID string
	Method  entity.ServiceMethod
}

// SubmitPipelineResult carries the ids produced by a committed submission.
type SubmitPipelineResult struct {
	FilingID      string
	DocumentID    string
	DocketEntryID string
	EntryNumber   int
	NefID         string
}
