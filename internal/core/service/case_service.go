package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewCaseService creates a new case lifecycle service.
func NewCaseService(caseRepo port.CaseRepository) usecase.CaseUseCase {
	return &CaseService{caseRepo: caseRepo}
}

// CaseService implements case lifecycle operations.
type CaseService struct {
	caseRepo port.CaseRepository
}

// CreateCase opens a new case in OPEN status.
func (s *CaseService) CreateCase(ctx context.Context, cmd usecase.CreateCaseCommand) (*entity.Case, error) {
	if existing, err := s.caseRepo.FindByCaseNumber(ctx, cmd.CourtID, cmd.CaseNumber); err == nil && existing != nil {
		return nil, entity.ErrCaseAlreadyExists
	}

	c := entity.NewCase(cmd.CourtID, cmd.CaseNumber, cmd.Title, cmd.CaseType)
	c.ID = uuid.NewString()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating case: %w", err)
	}

	id, err := s.caseRepo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creating case: %w", err)
	}
	c.ID = id

	slog.Info("case created",
		slog.String("court_id", c.CourtID),
		slog.String("case_id", c.ID),
		slog.String("case_number", c.CaseNumber),
	)
	return c, nil
}

// GetCase retrieves a case scoped to its court.
func (s *CaseService) GetCase(ctx context.Context, courtID, caseID string) (*entity.Case, error) {
	c, err := s.caseRepo.FindByID(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("finding case %s: %w", caseID, err)
	}
	return c, nil
}

// ListCases lists cases in a court with optional filters.
func (s *CaseService) ListCases(ctx context.Context, courtID string, filters port.CaseFilters) ([]*entity.Case, error) {
	cases, err := s.caseRepo.FindByCourt(ctx, courtID, filters)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	return cases, nil
}

// TransitionCase moves a case to a new status, enforcing the lifecycle.
func (s *CaseService) TransitionCase(ctx context.Context, cmd usecase.TransitionCaseCommand) (*entity.Case, error) {
	c, err := s.caseRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID)
	if err != nil {
		return nil, fmt.Errorf("finding case: %w", err)
	}

	if err := c.TransitionTo(cmd.Target); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating case: %w", err)
	}

	slog.Info("case status transitioned",
		slog.String("case_id", c.ID),
		slog.String("status", string(c.Status)),
	)
	return c, nil
}
