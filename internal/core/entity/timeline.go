package entity

import "time"

// TimelineSource discriminates which underlying table a TimelineEntry was
// read from.
type TimelineSource string

const (
	TimelineSourceDocketEntry   TimelineSource = "docket_entry"
	TimelineSourceDocumentEvent TimelineSource = "document_event"
)

// TimelineEntry is one row in the merged case-history stream returned by the
// Timeline Reader: DocketEntry rows and DocumentEvent rows interleaved by
// timestamp, filtered by the sealing visibility matrix.
type TimelineEntry struct {
	Source      TimelineSource `json:"source"`
	Timestamp   time.Time      `json:"timestamp"`
	EntryType   string         `json:"entryType"`
	Description string         `json:"description"`
	DocketEntry *DocketEntry   `json:"docketEntry,omitempty"`
	DocumentEvent *DocumentEvent `json:"documentEvent,omitempty"`
}
