package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// ValidateFilingCommand represents the command to dry-run a filing's
// validation without persisting anything.
type ValidateFilingCommand struct {
	CourtID      string
	CaseID       string
	FilingType   entity.FilingType
	DocumentType entity.DocumentType
	FiledBy      string
	UploadID     *string
	IsSealed     *bool
	SealingLevel *entity.SealingLevel
	ReasonCode   *string
}

// SubmitFilingCommand represents the command to submit a filing.
type SubmitFilingCommand struct {
	CourtID      string
	CaseID       string
	DocumentType entity.DocumentType
	Title        string
	FiledBy      string
	UploadID     *string
	IsSealed     *bool
	SealingLevel *entity.SealingLevel
	ReasonCode   *string
}

// FilingUseCase defines the input port for the Filing Submission Pipeline.
type FilingUseCase interface {
	// ValidateFiling runs §4.7's validation rules without committing.
	ValidateFiling(ctx context.Context, cmd ValidateFilingCommand) (*entity.ValidationError, error)

	// SubmitFiling runs the full pipeline: validate, create document, create
	// docket entry, submit filing, seed service records, create NEF.
	SubmitFiling(ctx context.Context, cmd SubmitFilingCommand) (*entity.Filing, *entity.Nef, error)

	// GetFiling retrieves a filing.
	GetFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Filing, error)

	// ListByCase lists filings in a case with optional filters.
	ListByCase(ctx context.Context, courtID, caseID string, filters port.FilingFilters) ([]*entity.FilingListItem, error)

	// Accept terminally accepts a submitted filing.
	Accept(ctx context.Context, courtID, caseID, filingID string) (*entity.Filing, error)

	// Reject terminally rejects a submitted filing.
	Reject(ctx context.Context, courtID, caseID, filingID string, issues []entity.ValidationIssue) (*entity.Filing, error)
}
