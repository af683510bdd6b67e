package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// InitUploadRequestToCommand converts an init request to a usecase command.
func InitUploadRequestToCommand(courtID, caseID string, req dto.InitUploadRequest, initiatedBy string) usecase.InitUploadCommand {
	return usecase.InitUploadCommand{
		CourtID:     courtID,
		CaseID:      caseID,
		Purpose:     entity.UploadPurpose(req.Purpose),
		Filename:    req.Filename,
		ContentType: req.ContentType,
		FileSize:    req.FileSize,
		InitiatedBy: initiatedBy,
	}
}

// InitUploadResultToResponse converts an InitUploadResult to a response DTO.
func InitUploadResultToResponse(result *usecase.InitUploadResult) *dto.InitUploadResponse {
	return &dto.InitUploadResponse{
		UploadID:  result.Upload.ID,
		PutURL:    result.PutURL,
		ExpiresAt: result.Upload.ExpiresAt,
	}
}

// UploadToResponse converts a FilingUpload entity to a response DTO.
func UploadToResponse(u *entity.FilingUpload) *dto.UploadResponse {
	return &dto.UploadResponse{
		ID:          u.ID,
		CourtID:     u.CourtID,
		CaseID:      u.CaseID,
		Purpose:     string(u.Purpose),
		Filename:    u.Filename,
		ContentType: u.ContentType,
		FileSize:    u.FileSize,
		Checksum:    u.Checksum,
		Finalized:   u.Finalized,
		ExpiresAt:   u.ExpiresAt,
		CreatedAt:   u.CreatedAt,
		FinalizedAt: u.FinalizedAt,
	}
}
