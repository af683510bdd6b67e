package dto

import "time"

// TimelineEntryResponse is one row in the merged case-history stream.
type TimelineEntryResponse struct {
	Source        string                  `json:"source"`
	Timestamp     time.Time               `json:"timestamp"`
	EntryType     string                  `json:"entryType"`
	Description   string                  `json:"description"`
	DocketEntry   *DocketEntryResponse    `json:"docketEntry,omitempty"`
	DocumentEvent *DocumentEventResponse  `json:"documentEvent,omitempty"`
}

// TimelineListRequest is the query-string shape for paging the timeline.
type TimelineListRequest struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// PaginatedTimelineResponse is a page of the merged timeline.
type PaginatedTimelineResponse struct {
	Data       []*TimelineEntryResponse `json:"data"`
	Pagination PaginationMeta           `json:"pagination"`
}
