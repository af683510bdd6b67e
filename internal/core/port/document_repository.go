package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// DocumentFilters contains optional filters for document queries.
type DocumentFilters struct {
	DocumentType *entity.DocumentType
	Sealed       *bool
	IncludeStruck bool
	Search       string
	Limit        int
	Offset       int
}

// DocumentRepository defines the interface for document data access.
type DocumentRepository interface {
	// Create creates a new document.
	Create(ctx context.Context, d *entity.Document) (string, error)

	// FindByID finds a document by ID within a court/case.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Document, error)

	// FindByCase lists documents in a case with optional filters. Callers are
	// responsible for applying the sealing visibility matrix to the result;
	// this method does not filter by requester role.
	FindByCase(ctx context.Context, courtID, caseID string, filters DocumentFilters) ([]*entity.Document, error)

	// Update persists changes to a document (sealing, replacement, striking).
	Update(ctx context.Context, d *entity.Document) error

	// CreateAttachment creates a docket attachment awaiting promotion.
	CreateAttachment(ctx context.Context, a *entity.DocketAttachment) (string, error)

	// FindAttachmentByID finds a docket attachment by ID.
	FindAttachmentByID(ctx context.Context, courtID, caseID, id string) (*entity.DocketAttachment, error)

	// FindAttachmentsByEntry lists attachments hung off a docket entry.
	FindAttachmentsByEntry(ctx context.Context, courtID, caseID, entryID string) ([]*entity.DocketAttachment, error)

	// UpdateAttachment persists changes to an attachment (promotion).
	UpdateAttachment(ctx context.Context, a *entity.DocketAttachment) error
}
