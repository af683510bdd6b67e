package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// CaseFilters contains optional filters for case queries.
type CaseFilters struct {
	Status *entity.CaseStatus
	Type   *entity.CaseType
	Search string
	Limit  int
	Offset int
}

// CaseRepository defines the interface for case data access, scoped to a
// single court on every call since cases never cross tenant boundaries.
type CaseRepository interface {
	// Create creates a new case.
	Create(ctx context.Context, c *entity.Case) (string, error)

	// FindByID finds a case by ID within a court.
	FindByID(ctx context.Context, courtID, id string) (*entity.Case, error)

	// FindByCaseNumber finds a case by its clerk-assigned number within a court.
	FindByCaseNumber(ctx context.Context, courtID, caseNumber string) (*entity.Case, error)

	// FindByCourt lists cases in a court with optional filters.
	FindByCourt(ctx context.Context, courtID string, filters CaseFilters) ([]*entity.Case, error)

	// Update persists changes to a case (status transitions, judge reassignment).
	Update(ctx context.Context, c *entity.Case) error

	// CountByCourt returns the total number of cases in a court.
	CountByCourt(ctx context.Context, courtID string) (int, error)
}
