package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// DocketEntryFilters contains optional filters for docket entry queries.
type DocketEntryFilters struct {
	EntryType *entity.EntryType
	Sealed    *bool
	Search    string
	Limit     int
	Offset    int
}

// DocketEntrySearchFilters contains optional filters for a cross-case docket
// search scoped to a single court.
type DocketEntrySearchFilters struct {
	CaseID    string
	EntryType *entity.EntryType
	Text      string
	Limit     int
	Offset    int
}

// DocketEntryRepository defines the interface for docket entry data access.
// CreateNext is responsible for assigning the next sequential EntryNumber for
// the case under a per-case serialization lock, so its signature differs
// from a plain Create.
type DocketEntryRepository interface {
	// CreateNext assigns the next entry number for caseID and persists e,
	// serialized against concurrent writers for the same case.
	CreateNext(ctx context.Context, courtID, caseID string, e *entity.DocketEntry) (string, error)

	// FindByID finds a docket entry by ID within a court/case.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.DocketEntry, error)

	// FindByCase lists entries for a case, ordered by entry number, with
	// optional filters.
	FindByCase(ctx context.Context, courtID, caseID string, filters DocketEntryFilters) ([]*entity.DocketEntry, error)

	// Search finds entries across every case in a court, optionally narrowed
	// to a single case, entry type, or description text, ordered by entry
	// date descending.
	Search(ctx context.Context, courtID string, filters DocketEntrySearchFilters) ([]*entity.DocketEntry, error)

	// LinkDocument associates a docket entry with a document in the same
	// (court, case).
	LinkDocument(ctx context.Context, courtID, caseID, entryID, documentID string) error

	// Statistics computes the aggregate entry counts for a case.
	Statistics(ctx context.Context, courtID, caseID string) (*entity.DocketStatistics, error)

	// HasLinkedFiling reports whether any filing references entryID, which
	// blocks deletion.
	HasLinkedFiling(ctx context.Context, courtID, caseID, entryID string) (bool, error)

	// Delete removes an entry with no downstream filing reference.
	Delete(ctx context.Context, courtID, caseID, entryID string) error
}
