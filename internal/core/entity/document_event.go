package entity

import "time"

// DocumentEventType is the closed set of audit actions recorded against a
// document.
type DocumentEventType string

const (
	DocumentEventSealed    DocumentEventType = "sealed"
	DocumentEventUnsealed  DocumentEventType = "unsealed"
	DocumentEventReplaced  DocumentEventType = "replaced"
	DocumentEventStricken  DocumentEventType = "stricken"
	DocumentEventPromoted  DocumentEventType = "promoted"
)

// DocumentEvent is an append-only audit log entry for a document. The
// Timeline Reader merges these with DocketEntry rows into one chronological
// stream.
type DocumentEvent struct {
	ID         string            `json:"id"`
	CourtID    string            `json:"courtId"`
	CaseID     string            `json:"caseId"`
	DocumentID string            `json:"documentId"`
	EventType  DocumentEventType `json:"eventType"`
	Actor      string            `json:"actor"`
	Detail     map[string]string `json:"detail,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// NewDocumentEvent records an audit entry for a document action.
func NewDocumentEvent(courtID, caseID, documentID string, eventType DocumentEventType, actor string, detail map[string]string) *DocumentEvent {
	return &DocumentEvent{
		CourtID:    courtID,
		CaseID:     caseID,
		DocumentID: documentID,
		EventType:  eventType,
		Actor:      actor,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
}
