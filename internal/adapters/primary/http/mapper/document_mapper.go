package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// DocumentToResponse converts a Document entity to a response DTO. The
// storage key never leaves the service; callers that need a download link
// set DownloadURL separately after presigning it.
func DocumentToResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:                   d.ID,
		CourtID:              d.CourtID,
		CaseID:               d.CaseID,
		Title:                d.Title,
		DocumentType:         string(d.DocumentType),
		Checksum:             d.Checksum,
		FileSize:             d.FileSize,
		ContentType:          d.ContentType,
		IsSealed:             d.IsSealed,
		SealingLevel:         string(d.SealingLevel),
		SealReasonCode:       d.SealReasonCode,
		SealMotionID:         d.SealMotionID,
		UploadedBy:           d.UploadedBy,
		SourceAttachmentID:   d.SourceAttachmentID,
		ReplacedByDocumentID: d.ReplacedByDocumentID,
		IsStricken:           d.IsStricken,
		CreatedAt:            d.CreatedAt,
	}
}

// DocumentsToResponses converts a slice of Document entities.
func DocumentsToResponses(docs []*entity.Document) []*dto.DocumentResponse {
	out := make([]*dto.DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = DocumentToResponse(d)
	}
	return out
}

// SealDocumentRequestToCommand converts a seal request to a usecase command.
func SealDocumentRequestToCommand(courtID, caseID, documentID string, req dto.SealDocumentRequest) usecase.SealDocumentCommand {
	return usecase.SealDocumentCommand{
		CourtID:    courtID,
		CaseID:     caseID,
		DocumentID: documentID,
		Level:      entity.SealingLevel(req.Level),
		ReasonCode: req.ReasonCode,
		MotionID:   req.MotionID,
	}
}

// ReplaceDocumentRequestToCommand converts a replace request to a usecase command.
func ReplaceDocumentRequestToCommand(courtID, caseID, documentID string, req dto.ReplaceDocumentRequest, replacedBy string) usecase.ReplaceDocumentCommand {
	return usecase.ReplaceDocumentCommand{
		CourtID:    courtID,
		CaseID:     caseID,
		DocumentID: documentID,
		UploadID:   req.UploadID,
		Title:      req.Title,
		ReplacedBy: replacedBy,
	}
}

// PromoteAttachmentRequestToCommand converts a promotion request to a usecase command.
func PromoteAttachmentRequestToCommand(courtID, caseID string, req dto.PromoteAttachmentRequest, promotedBy string) usecase.PromoteAttachmentCommand {
	return usecase.PromoteAttachmentCommand{
		CourtID:      courtID,
		CaseID:       caseID,
		AttachmentID: req.AttachmentID,
		DocumentType: entity.DocumentType(req.DocumentType),
		Title:        req.Title,
		PromotedBy:   promotedBy,
	}
}

// DocumentListRequestToFilters converts a list request to port filters.
func DocumentListRequestToFilters(req dto.DocumentListRequest) port.DocumentFilters {
	offset := (req.Page - 1) * req.PerPage
	filters := port.DocumentFilters{
		Sealed:        req.Sealed,
		IncludeStruck: req.IncludeStruck,
		Search:        req.Search,
		Limit:         req.PerPage,
		Offset:        offset,
	}
	if req.DocumentType != "" {
		docType := entity.DocumentType(req.DocumentType)
		filters.DocumentType = &docType
	}
	return filters
}

// DocumentsToPaginatedResponse converts documents to a paginated response.
// See DocketEntriesToPaginatedResponse for why Total is page-relative.
func DocumentsToPaginatedResponse(docs []*entity.Document, page, perPage, offset int) *dto.PaginatedDocumentResponse {
	total := int64(offset + len(docs))
	return &dto.PaginatedDocumentResponse{
		Data:       DocumentsToResponses(docs),
		Pagination: dto.NewPaginationMeta(total, page, perPage),
	}
}

// DocumentEventToResponse converts a DocumentEvent entity to a response DTO.
func DocumentEventToResponse(e *entity.DocumentEvent) *dto.DocumentEventResponse {
	return &dto.DocumentEventResponse{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		EventType:  string(e.EventType),
		Actor:      e.Actor,
		Detail:     e.Detail,
		CreatedAt:  e.CreatedAt,
	}
}

// DocumentEventsToResponses converts a slice of DocumentEvent entities.
func DocumentEventsToResponses(events []*entity.DocumentEvent) []*dto.DocumentEventResponse {
	out := make([]*dto.DocumentEventResponse, len(events))
	for i, e := range events {
		out[i] = DocumentEventToResponse(e)
	}
	return out
}
