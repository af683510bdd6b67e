package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// SealDocumentCommand represents the command to seal a document.
type SealDocumentCommand struct {
	CourtID    string
	CaseID     string
	DocumentID string
	Level      entity.SealingLevel
	ReasonCode string
	MotionID   *string
}

// ReplaceDocumentCommand represents the command to replace a document with
// a newly finalized upload.
type ReplaceDocumentCommand struct {
	CourtID    string
	CaseID     string
	DocumentID string
	UploadID   string
	Title      string
	ReplacedBy string
}

// PromoteAttachmentCommand represents the command to promote a docket
// attachment into a formal Document.
type PromoteAttachmentCommand struct {
	CourtID      string
	CaseID       string
	AttachmentID string
	DocumentType entity.DocumentType
	Title        string
	PromotedBy   string
}

// DocumentUseCase defines the input port for document and sealing-policy
// operations.
type DocumentUseCase interface {
	// GetDocument retrieves a document, enforcing the sealing visibility
	// matrix against the requester's role.
	GetDocument(ctx context.Context, courtID, caseID, documentID string, requester entity.Role) (*entity.Document, error)

	// ListByCase lists documents visible to the requester's role.
	ListByCase(ctx context.Context, courtID, caseID string, filters port.DocumentFilters, requester entity.Role) ([]*entity.Document, error)

	// Seal applies a non-Public sealing level and appends a document event.
	Seal(ctx context.Context, cmd SealDocumentCommand) (*entity.Document, error)

	// Unseal resets a document to Public and appends a document event.
	Unseal(ctx context.Context, courtID, caseID, documentID string) (*entity.Document, error)

	// Replace supersedes a document with one built from a finalized upload.
	Replace(ctx context.Context, cmd ReplaceDocumentCommand) (*entity.Document, error)

	// Strike marks a document as stricken from the record.
	Strike(ctx context.Context, courtID, caseID, documentID string) error

	// PromoteAttachment turns a docket attachment into a formal Document,
	// idempotent on attachment id.
	PromoteAttachment(ctx context.Context, cmd PromoteAttachmentCommand) (*entity.Document, *entity.DocketEntry, error)
}
