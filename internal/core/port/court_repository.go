package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// CourtRepository defines the interface for court (tenant) data access.
type CourtRepository interface {
	// FindByCode finds a court by its X-Court-District header value.
	FindByCode(ctx context.Context, courtCode string) (*entity.Court, error)

	// FindByID finds a court by ID.
	FindByID(ctx context.Context, id string) (*entity.Court, error)

	// List returns every registered court.
	List(ctx context.Context) ([]*entity.Court, error)
}
