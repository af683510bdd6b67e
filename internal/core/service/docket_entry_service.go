package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewDocketEntryService creates a new docket entry engine service.
func NewDocketEntryService(entryRepo port.DocketEntryRepository, caseRepo port.CaseRepository) usecase.DocketEntryUseCase {
	return &DocketEntryService{entryRepo: entryRepo, caseRepo: caseRepo}
}

// DocketEntryService implements the Docket Entry Engine.
type DocketEntryService struct {
	entryRepo port.DocketEntryRepository
	caseRepo  port.CaseRepository
}

// CreateEntry appends a new entry, assigning the next entry number under a
// per-case serialization guarantee delegated to the repository.
func (s *DocketEntryService) CreateEntry(ctx context.Context, cmd usecase.CreateDocketEntryCommand) (*entity.DocketEntry, error) {
	if _, err := s.caseRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID); err != nil {
		return nil, fmt.Errorf("finding case: %w", err)
	}

	entry := entity.NewDocketEntry(cmd.CourtID, cmd.CaseID, 0, cmd.EntryType, cmd.Description, cmd.EnteredBy)
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("validating docket entry: %w", err)
	}

	id, err := s.entryRepo.CreateNext(ctx, cmd.CourtID, cmd.CaseID, entry)
	if err != nil {
		return nil, fmt.Errorf("creating docket entry: %w", err)
	}
	entry.ID = id

	slog.Info("docket entry created",
		slog.String("case_id", cmd.CaseID),
		slog.Int("entry_number", entry.EntryNumber),
		slog.String("entry_type", string(entry.EntryType)),
	)
	return entry, nil
}

// GetEntry retrieves a single docket entry.
func (s *DocketEntryService) GetEntry(ctx context.Context, courtID, caseID, entryID string) (*entity.DocketEntry, error) {
	entry, err := s.entryRepo.FindByID(ctx, courtID, caseID, entryID)
	if err != nil {
		return nil, fmt.Errorf("finding docket entry %s: %w", entryID, err)
	}
	return entry, nil
}

// LinkDocument associates an existing entry with a document in the same
// (court, case).
func (s *DocketEntryService) LinkDocument(ctx context.Context, courtID, caseID, entryID, documentID string) error {
	if err := s.entryRepo.LinkDocument(ctx, courtID, caseID, entryID, documentID); err != nil {
		return fmt.Errorf("linking document to entry: %w", err)
	}
	return nil
}

// ListByCase lists entries for a case ordered by entry number.
func (s *DocketEntryService) ListByCase(ctx context.Context, courtID, caseID string, filters port.DocketEntryFilters) ([]*entity.DocketEntry, error) {
	entries, err := s.entryRepo.FindByCase(ctx, courtID, caseID, filters)
	if err != nil {
		return nil, fmt.Errorf("listing docket entries: %w", err)
	}
	return entries, nil
}

// Search finds entries across every case in a court, ordered by entry date
// descending, optionally narrowed by case, entry type, or description text.
func (s *DocketEntryService) Search(ctx context.Context, courtID string, filters port.DocketEntrySearchFilters) ([]*entity.DocketEntry, error) {
	entries, err := s.entryRepo.Search(ctx, courtID, filters)
	if err != nil {
		return nil, fmt.Errorf("searching docket entries: %w", err)
	}
	return entries, nil
}

// Statistics computes aggregate entry counts for a case.
func (s *DocketEntryService) Statistics(ctx context.Context, courtID, caseID string) (*entity.DocketStatistics, error) {
	stats, err := s.entryRepo.Statistics(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("computing docket statistics: %w", err)
	}
	return stats, nil
}

// DeleteEntry removes an entry, failing with Conflict if any filing
// references it.
func (s *DocketEntryService) DeleteEntry(ctx context.Context, courtID, caseID, entryID string) error {
	linked, err := s.entryRepo.HasLinkedFiling(ctx, courtID, caseID, entryID)
	if err != nil {
		return fmt.Errorf("checking docket entry references: %w", err)
	}
	if linked {
		return entity.ErrDocketEntryHasFilings
	}
	if err := s.entryRepo.Delete(ctx, courtID, caseID, entryID); err != nil {
		return fmt.Errorf("deleting docket entry: %w", err)
	}
	slog.Info("docket entry deleted", slog.String("entry_id", entryID))
	return nil
}
