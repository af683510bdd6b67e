package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// TimelineEntryToResponse converts a TimelineEntry to a response DTO.
func TimelineEntryToResponse(e *entity.TimelineEntry) *dto.TimelineEntryResponse {
	resp := &dto.TimelineEntryResponse{
		Source:      string(e.Source),
		Timestamp:   e.Timestamp,
		EntryType:   e.EntryType,
		Description: e.Description,
	}
	if e.DocketEntry != nil {
		resp.DocketEntry = DocketEntryToResponse(e.DocketEntry)
	}
	if e.DocumentEvent != nil {
		resp.DocumentEvent = DocumentEventToResponse(e.DocumentEvent)
	}
	return resp
}

// TimelinePageToResponse converts a TimelinePage to a paginated response DTO.
func TimelinePageToResponse(entries []*entity.TimelineEntry, total, limit, offset int) *dto.PaginatedTimelineResponse {
	out := make([]*dto.TimelineEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = TimelineEntryToResponse(e)
	}
	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &dto.PaginatedTimelineResponse{
		Data:       out,
		Pagination: dto.NewPaginationMeta(int64(total), page, limit),
	}
}
