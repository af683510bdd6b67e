package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewPartyService creates a new party and representation service.
func NewPartyService(partyRepo port.PartyRepository, repRepo port.RepresentationRepository) usecase.PartyUseCase {
	return &PartyService{partyRepo: partyRepo, repRepo: repRepo}
}

// PartyService implements party and representation operations.
type PartyService struct {
	partyRepo port.PartyRepository
	repRepo   port.RepresentationRepository
}

// AddParty attaches a new active party to a case.
func (s *PartyService) AddParty(ctx context.Context, cmd usecase.AddPartyCommand) (*entity.Party, error) {
	p := entity.NewParty(cmd.CourtID, cmd.CaseID, cmd.Name, cmd.PartyType, cmd.PartyRole)
	p.ID = uuid.NewString()
	p.Email = cmd.Email
	p.Phone = cmd.Phone
	p.NefSMSOptIn = cmd.NefSMSOptIn

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating party: %w", err)
	}

	id, err := s.partyRepo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating party: %w", err)
	}
	p.ID = id
	return p, nil
}

// ListByCase lists every party in a case.
func (s *PartyService) ListByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error) {
	parties, err := s.partyRepo.FindByCase(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	return parties, nil
}

// AddRepresentation records an attorney's appearance for a party.
func (s *PartyService) AddRepresentation(ctx context.Context, cmd usecase.AddRepresentationCommand) (*entity.Representation, error) {
	if _, err := s.partyRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.PartyID); err != nil {
		return nil, fmt.Errorf("finding party: %w", err)
	}

	r := &entity.Representation{
		ID:          uuid.NewString(),
		CourtID:     cmd.CourtID,
		CaseID:      cmd.CaseID,
		PartyID:     cmd.PartyID,
		AttorneyID:  cmd.AttorneyID,
		AttorneyBar: cmd.AttorneyBar,
		LeadCounsel: cmd.LeadCounsel,
		StartedAt:   time.Now().UTC(),
	}

	id, err := s.repRepo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("creating representation: %w", err)
	}
	r.ID = id
	return r, nil
}

// WithdrawRepresentation ends an attorney's representation.
func (s *PartyService) WithdrawRepresentation(ctx context.Context, courtID, caseID, representationID string) error {
	r, err := s.repRepo.FindByID(ctx, courtID, caseID, representationID)
	if err != nil {
		return fmt.Errorf("finding representation: %w", err)
	}
	r.Withdraw()
	if err := s.repRepo.Update(ctx, r); err != nil {
		return fmt.Errorf("updating representation: %w", err)
	}
	return nil
}
