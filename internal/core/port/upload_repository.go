package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// FilingUploadRepository defines the interface for staged-upload data access.
type FilingUploadRepository interface {
	// Create stages a new upload slot.
	Create(ctx context.Context, u *entity.FilingUpload) (string, error)

	// FindByID finds a staged upload by ID within a court/case.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.FilingUpload, error)

	// Update persists changes to a staged upload (finalization).
	Update(ctx context.Context, u *entity.FilingUpload) error

	// FindExpiredUnfinalized returns up to limit staged uploads whose staging
	// window has elapsed without finalization, across all courts and cases.
	FindExpiredUnfinalized(ctx context.Context, limit int) ([]*entity.FilingUpload, error)

	// Delete removes a staged upload row.
	Delete(ctx context.Context, courtID, caseID, id string) error
}
