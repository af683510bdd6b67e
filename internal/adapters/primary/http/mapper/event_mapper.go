package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// EventRequestToEnvelope converts a wire event request to the façade's envelope.
func EventRequestToEnvelope(req dto.EventRequest) usecase.EventEnvelope {
	return usecase.EventEnvelope{
		Kind:         usecase.EventKind(req.Kind),
		CaseID:       req.CaseID,
		EntryType:    entity.EntryType(req.EntryType),
		Description:  req.Description,
		DocumentType: entity.DocumentType(req.DocumentType),
		Title:        req.Title,
		UploadID:     req.UploadID,
		AttachmentID: req.AttachmentID,
	}
}

// EventResultToResponse converts a dispatch result to a response DTO.
func EventResultToResponse(result *usecase.EventResult) *dto.EventResponse {
	resp := &dto.EventResponse{}
	if result.DocketEntry != nil {
		resp.DocketEntry = DocketEntryToResponse(result.DocketEntry)
	}
	if result.Document != nil {
		resp.Document = DocumentToResponse(result.Document)
	}
	if result.Filing != nil {
		resp.Filing = FilingToResponse(result.Filing)
	}
	if result.Nef != nil {
		resp.Nef = NefToResponse(result.Nef)
	}
	return resp
}
