package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// DocumentEventRepository defines the interface for document audit-log data
// access.
type DocumentEventRepository interface {
	// Create appends an audit event.
	Create(ctx context.Context, e *entity.DocumentEvent) (string, error)

	// FindByDocument lists events for a single document in chronological order.
	FindByDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.DocumentEvent, error)

	// ExistsPromotedForAttachment reports whether a "promoted" event already
	// exists for the document an attachment was promoted into, making
	// PromoteAttachment idempotent.
	ExistsPromotedForAttachment(ctx context.Context, courtID, caseID, attachmentID string) (*entity.DocumentEvent, bool, error)

	// FindByCase lists every document event across a case's documents,
	// feeding the Timeline Reader's merged stream.
	FindByCase(ctx context.Context, courtID, caseID string, limit, offset int) ([]*entity.DocumentEvent, error)
}
