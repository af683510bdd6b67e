package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// CreateDocketEntryCommand represents the command to append a text-only
// entry directly to a case's docket (the Event Façade's "text_entry" kind).
type CreateDocketEntryCommand struct {
	CourtID   string
	CaseID    string
	EntryType   entity.EntryType
	Description string
	EnteredBy   string
}

// DocketEntryUseCase defines the input port for docket entry operations.
type DocketEntryUseCase interface {
	// CreateEntry appends a new entry, assigning the next entry number under
	// a per-case serialization guarantee.
	CreateEntry(ctx context.Context, cmd CreateDocketEntryCommand) (*entity.DocketEntry, error)

	// GetEntry retrieves a single docket entry.
	GetEntry(ctx context.Context, courtID, caseID, entryID string) (*entity.DocketEntry, error)

	// LinkDocument associates an existing entry with a document in the same
	// (court, case).
	LinkDocument(ctx context.Context, courtID, caseID, entryID, documentID string) error

	// ListByCase lists entries for a case ordered by entry number.
	ListByCase(ctx context.Context, courtID, caseID string, filters port.DocketEntryFilters) ([]*entity.DocketEntry, error)

	// Search finds entries across every case in a court, ordered by entry
	// date descending.
	Search(ctx context.Context, courtID string, filters port.DocketEntrySearchFilters) ([]*entity.DocketEntry, error)

	// Statistics computes aggregate entry counts for a case.
	Statistics(ctx context.Context, courtID, caseID string) (*entity.DocketStatistics, error)

	// DeleteEntry removes an entry. Fails with Conflict if any filing
	// references it.
	DeleteEntry(ctx context.Context, courtID, caseID, entryID string) error
}
