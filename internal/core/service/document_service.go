package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewDocumentService creates a new document store and sealing policy
// service.
func NewDocumentService(
	documentRepo port.DocumentRepository,
	eventRepo port.DocumentEventRepository,
	uploadRepo port.FilingUploadRepository,
	entryRepo port.DocketEntryRepository,
	storage port.StorageAdapter,
) usecase.DocumentUseCase {
	return &DocumentService{
		documentRepo: documentRepo,
		eventRepo:    eventRepo,
		uploadRepo:   uploadRepo,
		entryRepo:    entryRepo,
		storage:      storage,
	}
}

// DocumentService implements the Document Store & Sealing Policy.
type DocumentService struct {
	documentRepo port.DocumentRepository
	eventRepo    port.DocumentEventRepository
	uploadRepo   port.FilingUploadRepository
	entryRepo    port.DocketEntryRepository
	storage      port.StorageAdapter
}

// GetDocument retrieves a document, enforcing the sealing visibility matrix
// against the requester's role.
func (s *DocumentService) GetDocument(ctx context.Context, courtID, caseID, documentID string, requester entity.Role) (*entity.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, courtID, caseID, documentID)
	if err != nil {
		return nil, fmt.Errorf("finding document %s: %w", documentID, err)
	}
	if !doc.VisibleTo(requester) {
		return nil, entity.ErrSealingVisibilityDenied
	}
	return doc, nil
}

// ListByCase lists documents visible to the requester's role.
func (s *DocumentService) ListByCase(ctx context.Context, courtID, caseID string, filters port.DocumentFilters, requester entity.Role) ([]*entity.Document, error) {
	docs, err := s.documentRepo.FindByCase(ctx, courtID, caseID, filters)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	visible := make([]*entity.Document, 0, len(docs))
	for _, d := range docs {
		if d.VisibleTo(requester) {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

// Seal applies a non-Public sealing level and appends a document event.
func (s *DocumentService) Seal(ctx context.Context, cmd usecase.SealDocumentCommand) (*entity.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("finding document: %w", err)
	}
	if doc.IsStricken {
		return nil, entity.ErrDocumentStruck
	}
	if cmd.Level == entity.SealingLevelPublic {
		return nil, entity.ErrInvalidSealingLevel
	}
	if err := doc.Seal(cmd.Level, cmd.ReasonCode, cmd.MotionID); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}
	s.appendEvent(ctx, cmd.CourtID, cmd.CaseID, doc.ID, entity.DocumentEventSealed, "", map[string]string{
		"sealing_level": string(cmd.Level),
		"reason_code":   cmd.ReasonCode,
	})
	return doc, nil
}

// Unseal resets a document to Public and appends a document event.
func (s *DocumentService) Unseal(ctx context.Context, courtID, caseID, documentID string) (*entity.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, courtID, caseID, documentID)
	if err != nil {
		return nil, fmt.Errorf("finding document: %w", err)
	}
	if err := doc.Unseal(); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}
	s.appendEvent(ctx, courtID, caseID, doc.ID, entity.DocumentEventUnsealed, "", nil)
	return doc, nil
}

// Replace supersedes a document with one built from a finalized upload.
func (s *DocumentService) Replace(ctx context.Context, cmd usecase.ReplaceDocumentCommand) (*entity.Document, error) {
	old, err := s.documentRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("finding document: %w", err)
	}
	if old.IsStricken {
		return nil, entity.ErrDocumentStruck
	}

	upload, err := s.uploadRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.UploadID)
	if err != nil {
		return nil, fmt.Errorf("finding upload: %w", err)
	}
	if !upload.Finalized {
		return nil, entity.ErrUploadNotFinalized
	}

	title := cmd.Title
	if title == "" {
		title = old.Title
	}
	next := entity.NewDocument(cmd.CourtID, cmd.CaseID, title, old.DocumentType, upload.StorageKey, upload.Checksum, upload.ContentType, upload.FileSize, cmd.ReplacedBy)
	next.ID = uuid.NewString()

	if err := old.MarkReplacedBy(next.ID); err != nil {
		return nil, err
	}

	if _, err := s.documentRepo.Create(ctx, next); err != nil {
		return nil, fmt.Errorf("creating replacement document: %w", err)
	}
	if err := s.documentRepo.Update(ctx, old); err != nil {
		return nil, fmt.Errorf("updating replaced document: %w", err)
	}
	s.appendEvent(ctx, cmd.CourtID, cmd.CaseID, old.ID, entity.DocumentEventReplaced, cmd.ReplacedBy, map[string]string{
		"replaced_by_document_id": next.ID,
	})
	return next, nil
}

// Strike marks a document as stricken from the record.
func (s *DocumentService) Strike(ctx context.Context, courtID, caseID, documentID string) error {
	doc, err := s.documentRepo.FindByID(ctx, courtID, caseID, documentID)
	if err != nil {
		return fmt.Errorf("finding document: %w", err)
	}
	if err := doc.Strike(); err != nil {
		return err
	}
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	s.appendEvent(ctx, courtID, caseID, doc.ID, entity.DocumentEventStricken, "", nil)
	return nil
}

// PromoteAttachment turns a docket attachment into a formal Document,
// idempotent on attachment id: a second call for the same attachment returns
// the same document without emitting a second "promoted" event.
func (s *DocumentService) PromoteAttachment(ctx context.Context, cmd usecase.PromoteAttachmentCommand) (*entity.Document, *entity.DocketEntry, error) {
	if existing, ok, err := s.eventRepo.ExistsPromotedForAttachment(ctx, cmd.CourtID, cmd.CaseID, cmd.AttachmentID); err != nil {
		return nil, nil, fmt.Errorf("checking promotion idempotency: %w", err)
	} else if ok {
		doc, err := s.documentRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, existing.DocumentID)
		if err != nil {
			return nil, nil, fmt.Errorf("finding previously promoted document: %w", err)
		}
		entry, err := s.entryRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, existing.Detail["docket_entry_id"])
		if err != nil {
			return nil, nil, fmt.Errorf("finding promotion docket entry: %w", err)
		}
		return doc, entry, nil
	}

	attachment, err := s.documentRepo.FindAttachmentByID(ctx, cmd.CourtID, cmd.CaseID, cmd.AttachmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding attachment: %w", err)
	}
	if attachment.IsPromoted() {
		doc, err := s.documentRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, *attachment.PromotedToID)
		if err != nil {
			return nil, nil, fmt.Errorf("finding promoted document: %w", err)
		}
		entry, err := s.entryRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, attachment.DocketEntryID)
		if err != nil {
			return nil, nil, fmt.Errorf("finding docket entry: %w", err)
		}
		return doc, entry, nil
	}

	doc := entity.NewDocument(cmd.CourtID, cmd.CaseID, cmd.Title, cmd.DocumentType, attachment.StorageKey, attachment.Checksum, attachment.ContentType, attachment.FileSize, cmd.PromotedBy)
	doc.SourceAttachmentID = &attachment.ID
	doc.ID = uuid.NewString()
	if _, err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, nil, fmt.Errorf("creating promoted document: %w", err)
	}

	if err := attachment.MarkPromoted(doc.ID); err != nil {
		return nil, nil, err
	}
	if err := s.documentRepo.UpdateAttachment(ctx, attachment); err != nil {
		return nil, nil, fmt.Errorf("updating attachment: %w", err)
	}

	if err := s.entryRepo.LinkDocument(ctx, cmd.CourtID, cmd.CaseID, attachment.DocketEntryID, doc.ID); err != nil {
		return nil, nil, fmt.Errorf("linking promoted document to entry: %w", err)
	}
	entry, err := s.entryRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, attachment.DocketEntryID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding docket entry: %w", err)
	}

	s.appendEvent(ctx, cmd.CourtID, cmd.CaseID, doc.ID, entity.DocumentEventPromoted, cmd.PromotedBy, map[string]string{
		"attachment_id":    attachment.ID,
		"docket_entry_id":  attachment.DocketEntryID,
	})
	return doc, entry, nil
}

func (s *DocumentService) appendEvent(ctx context.Context, courtID, caseID, documentID string, eventType entity.DocumentEventType, actor string, detail map[string]string) {
	ev := entity.NewDocumentEvent(courtID, caseID, documentID, eventType, actor, detail)
	if _, err := s.eventRepo.Create(ctx, ev); err != nil {
		slog.Error("failed to append document event",
			slog.String("document_id", documentID),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
