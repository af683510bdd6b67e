package service

import (
	"context"
	"fmt"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewEventService creates a new Event Façade service.
func NewEventService(
	docketEntries usecase.DocketEntryUseCase,
	filings usecase.FilingUseCase,
	documents usecase.DocumentUseCase,
) usecase.EventUseCase {
	return &EventService{docketEntries: docketEntries, filings: filings, documents: documents}
}

// EventService implements the Event Façade: one endpoint, tagged dispatch
// over the envelope's Kind to the three writer use cases it fronts.
type EventService struct {
	docketEntries usecase.DocketEntryUseCase
	filings       usecase.FilingUseCase
	documents     usecase.DocumentUseCase
}

// eventKindMinRole is the Event Façade's per-kind role floor (§4.9):
// text_entry and promote_attachment write directly to the docket and are
// Clerk/Judge only, while filing accepts Attorney and up.
var eventKindMinRole = map[usecase.EventKind]entity.Role{
	usecase.EventKindTextEntry:         entity.RoleClerk,
	usecase.EventKindPromoteAttachment: entity.RoleClerk,
	usecase.EventKindFiling:            entity.RoleAttorney,
}

// Dispatch routes an event envelope to the Docket Entry Engine, Filing
// Submission Pipeline, or Document promotion flow, by Kind.
func (s *EventService) Dispatch(ctx context.Context, courtID string, requester entity.Role, actorID string, env usecase.EventEnvelope) (*usecase.EventResult, error) {
	minRole, ok := eventKindMinRole[env.Kind]
	if !ok {
		return nil, entity.ErrUnknownEventKind
	}
	if !requester.HasPermission(minRole) {
		return nil, entity.ErrInsufficientRole
	}

	switch env.Kind {
	case usecase.EventKindTextEntry:
		entry, err := s.docketEntries.CreateEntry(ctx, usecase.CreateDocketEntryCommand{
			CourtID:     courtID,
			CaseID:      env.CaseID,
			EntryType:   env.EntryType,
			Description: env.Description,
			EnteredBy:   actorID,
		})
		if err != nil {
			return nil, fmt.Errorf("dispatching text entry: %w", err)
		}
		return &usecase.EventResult{DocketEntry: entry}, nil

	case usecase.EventKindFiling:
		filing, nef, err := s.filings.SubmitFiling(ctx, usecase.SubmitFilingCommand{
			CourtID:      courtID,
			CaseID:       env.CaseID,
			DocumentType: env.DocumentType,
			Title:        env.Title,
			FiledBy:      actorID,
			UploadID:     env.UploadID,
		})
		if err != nil {
			return nil, fmt.Errorf("dispatching filing: %w", err)
		}
		return &usecase.EventResult{Filing: filing, Nef: nef}, nil

	case usecase.EventKindPromoteAttachment:
		doc, entry, err := s.documents.PromoteAttachment(ctx, usecase.PromoteAttachmentCommand{
			CourtID:      courtID,
			CaseID:       env.CaseID,
			AttachmentID: env.AttachmentID,
			DocumentType: env.DocumentType,
			Title:        env.Title,
			PromotedBy:   actorID,
		})
		if err != nil {
			return nil, fmt.Errorf("dispatching promotion: %w", err)
		}
		return &usecase.EventResult{Document: doc, DocketEntry: entry}, nil

	default:
		return nil, entity.ErrUnknownEventKind
	}
}
