package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// ServiceRecordRepository defines the interface for service-of-process
// record data access.
type ServiceRecordRepository interface {
	// CreateBatch seeds service records for multiple parties against one
	// document in a single round trip.
	CreateBatch(ctx context.Context, records []*entity.ServiceRecord) error

	// FindByDocument lists service records for a document.
	FindByDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.ServiceRecord, error)

	// FindByID finds a single service record.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.ServiceRecord, error)

	// Update persists changes to a service record (completion).
	Update(ctx context.Context, r *entity.ServiceRecord) error
}

// NefRepository defines the interface for Notice of Electronic Filing data
// access.
type NefRepository interface {
	// Create persists a pending NEF with its frozen recipient snapshot.
	Create(ctx context.Context, n *entity.Nef) (string, error)

	// FindByID finds a NEF by ID.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Nef, error)

	// FindByFiling finds the NEF generated for a filing, if any.
	FindByFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Nef, error)

	// Update persists delivery status changes.
	Update(ctx context.Context, n *entity.Nef) error
}
