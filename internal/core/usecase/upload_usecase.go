package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// InitUploadCommand represents the command to stage a new upload slot.
type InitUploadCommand struct {
	CourtID     string
	CaseID      string
	Purpose     entity.UploadPurpose
	Filename    string
	ContentType string
	FileSize    int64
	InitiatedBy string
}

// InitUploadResult carries the staged upload plus the presigned PUT URL the
// client uploads the object body to.
type InitUploadResult struct {
	Upload    *entity.FilingUpload
	PutURL    string
}

// FinalizeUploadCommand represents the command to confirm a staged object
// landed in storage. The checksum is derived from the object's HEAD
// response, not supplied by the caller.
type FinalizeUploadCommand struct {
	CourtID  string
	CaseID   string
	UploadID string
}

// UploadUseCase defines the input port for the Upload Stager.
type UploadUseCase interface {
	// InitUpload stages an upload slot and returns a presigned PUT URL.
	InitUpload(ctx context.Context, cmd InitUploadCommand) (*InitUploadResult, error)

	// FinalizeUpload confirms the object exists in storage via a HEAD request,
	// records its ETag as the checksum, and marks the staged upload finalized.
	FinalizeUpload(ctx context.Context, cmd FinalizeUploadCommand) (*entity.FilingUpload, error)

	// ExpireStale sweeps up to batchSize staged uploads past their staging
	// window (ExpiresAt) without finalization, returning how many were removed.
	ExpireStale(ctx context.Context, batchSize int) (int, error)
}
