package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// CreateCaseCommand represents the command to open a new case.
type CreateCaseCommand struct {
	CourtID    string
	CaseNumber string
	Title      string
	CaseType   entity.CaseType
}

// TransitionCaseCommand represents the command to move a case's status.
type TransitionCaseCommand struct {
	CourtID string
	CaseID  string
	Target  entity.CaseStatus
}

// CaseUseCase defines the input port for case lifecycle operations.
type CaseUseCase interface {
	// CreateCase opens a new case in OPEN status.
	CreateCase(ctx context.Context, cmd CreateCaseCommand) (*entity.Case, error)

	// GetCase retrieves a case scoped to its court.
	GetCase(ctx context.Context, courtID, caseID string) (*entity.Case, error)

	// ListCases lists cases in a court with optional filters.
	ListCases(ctx context.Context, courtID string, filters port.CaseFilters) ([]*entity.Case, error)

	// TransitionCase moves a case to a new status, enforcing the lifecycle.
	TransitionCase(ctx context.Context, cmd TransitionCaseCommand) (*entity.Case, error)
}
