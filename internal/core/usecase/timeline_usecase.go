package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// TimelinePage is the paginated merged case-history result.
type TimelinePage struct {
	Entries []*entity.TimelineEntry
	Total   int
}

// TimelineUseCase defines the input port for the Timeline Reader and the
// docket sheet projection.
type TimelineUseCase interface {
	// GetTimeline merges DocketEntry and DocumentEvent rows for a case into
	// one stream ordered by timestamp descending, filtered by the requester's
	// sealing visibility.
	GetTimeline(ctx context.Context, courtID, caseID string, requester entity.Role, limit, offset int) (*TimelinePage, error)

	// GetDocketSheet returns the denormalized case header, entries, and
	// active party list.
	GetDocketSheet(ctx context.Context, courtID, caseID string, requester entity.Role) (*entity.DocketSheet, error)
}
