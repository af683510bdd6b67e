package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// EventKind is the closed set of event envelopes the Event Façade accepts.
type EventKind string

const (
	EventKindTextEntry        EventKind = "text_entry"
	EventKindFiling           EventKind = "filing"
	EventKindPromoteAttachment EventKind = "promote_attachment"
)

// EventEnvelope is the single wire shape POSTed to the events endpoint. Only
// the fields relevant to Kind are read; the façade validates the rest.
type EventEnvelope struct {
	Kind         EventKind
	CaseID       string
	EntryType    entity.EntryType
	Description  string
	DocumentType entity.DocumentType
	Title        string
	FiledBy      string
	UploadID     *string
	AttachmentID string
}

// EventResult is the union of what an event dispatch can produce; only the
// fields relevant to the dispatched kind are populated.
type EventResult struct {
	DocketEntry *entity.DocketEntry
	Document    *entity.Document
	Filing      *entity.Filing
	Nef         *entity.Nef
}

// EventUseCase defines the input port for the Event Façade: single endpoint,
// tagged dispatch over the envelope's Kind.
type EventUseCase interface {
	// Dispatch validates the envelope's required role and fields for its
	// Kind, then routes to the Docket Entry Engine, Filing Submission
	// Pipeline, or Document promotion flow.
	Dispatch(ctx context.Context, courtID string, requester entity.Role, actorID string, env EventEnvelope) (*EventResult, error)
}
