package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

const (
	defaultTimelinePageSize = 50
	maxTimelinePageSize     = 100
	timelineFetchWindow     = 1000
)

// NewTimelineService creates a new Timeline Reader and docket sheet service.
func NewTimelineService(
	entryRepo port.DocketEntryRepository,
	eventRepo port.DocumentEventRepository,
	documentRepo port.DocumentRepository,
	caseRepo port.CaseRepository,
	partyRepo port.PartyRepository,
) usecase.TimelineUseCase {
	return &TimelineService{
		entryRepo:    entryRepo,
		eventRepo:    eventRepo,
		documentRepo: documentRepo,
		caseRepo:     caseRepo,
		partyRepo:    partyRepo,
	}
}

// TimelineService implements the Timeline Reader.
type TimelineService struct {
	entryRepo    port.DocketEntryRepository
	eventRepo    port.DocumentEventRepository
	documentRepo port.DocumentRepository
	caseRepo     port.CaseRepository
	partyRepo    port.PartyRepository
}

// GetTimeline merges DocketEntry and DocumentEvent rows for a case into one
// stream ordered by timestamp descending, filtered by the requester's
// sealing visibility, and paginated after the merge.
func (s *TimelineService) GetTimeline(ctx context.Context, courtID, caseID string, requester entity.Role, limit, offset int) (*usecase.TimelinePage, error) {
	if limit <= 0 {
		limit = defaultTimelinePageSize
	}
	if limit > maxTimelinePageSize {
		limit = maxTimelinePageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.entryRepo.FindByCase(ctx, courtID, caseID, port.DocketEntryFilters{Limit: timelineFetchWindow})
	if err != nil {
		return nil, fmt.Errorf("listing docket entries: %w", err)
	}
	events, err := s.eventRepo.FindByCase(ctx, courtID, caseID, timelineFetchWindow, 0)
	if err != nil {
		return nil, fmt.Errorf("listing document events: %w", err)
	}

	merged := make([]*entity.TimelineEntry, 0, len(entries)+len(events))
	for _, e := range entries {
		if !e.VisibleTo(requester) {
			continue
		}
		entry := e
		merged = append(merged, &entity.TimelineEntry{
			Source:      entity.TimelineSourceDocketEntry,
			Timestamp:   entry.EntryDate,
			EntryType:   string(entry.EntryType),
			Description: entry.Description,
			DocketEntry: entry,
		})
	}

	documentCache := make(map[string]*entity.Document)
	for _, ev := range events {
		doc, ok := documentCache[ev.DocumentID]
		if !ok {
			found, err := s.documentRepo.FindByID(ctx, courtID, caseID, ev.DocumentID)
			if err != nil {
				continue
			}
			doc = found
			documentCache[ev.DocumentID] = doc
		}
		if !doc.VisibleTo(requester) {
			continue
		}
		event := ev
		merged = append(merged, &entity.TimelineEntry{
			Source:      entity.TimelineSourceDocumentEvent,
			Timestamp:   event.CreatedAt,
			EntryType:   string(event.EventType),
			Description: fmt.Sprintf("document %s event: %s", event.DocumentID, event.EventType),
			DocumentEvent: event,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	total := len(merged)
	if offset >= total {
		return &usecase.TimelinePage{Entries: []*entity.TimelineEntry{}, Total: total}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return &usecase.TimelinePage{Entries: merged[offset:end], Total: total}, nil
}

// GetDocketSheet returns the denormalized case header, visible entries, and
// active party list.
func (s *TimelineService) GetDocketSheet(ctx context.Context, courtID, caseID string, requester entity.Role) (*entity.DocketSheet, error) {
	c, err := s.caseRepo.FindByID(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("finding case: %w", err)
	}

	entries, err := s.entryRepo.FindByCase(ctx, courtID, caseID, port.DocketEntryFilters{Limit: timelineFetchWindow})
	if err != nil {
		return nil, fmt.Errorf("listing docket entries: %w", err)
	}
	visible := make([]*entity.DocketEntry, 0, len(entries))
	for _, e := range entries {
		if e.VisibleTo(requester) {
			visible = append(visible, e)
		}
	}

	parties, err := s.partyRepo.FindByCase(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}

	return &entity.DocketSheet{Case: c, Entries: visible, Parties: parties}, nil
}
