package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

const presignWindow = 15 * time.Minute

// NewUploadService creates a new Upload Stager service.
func NewUploadService(uploadRepo port.FilingUploadRepository, storage port.StorageAdapter) usecase.UploadUseCase {
	return &UploadService{uploadRepo: uploadRepo, storage: storage}
}

// UploadService implements the Upload Stager.
type UploadService struct {
	uploadRepo port.FilingUploadRepository
	storage    port.StorageAdapter
}

// InitUpload stages an upload slot and returns a presigned PUT URL.
func (s *UploadService) InitUpload(ctx context.Context, cmd usecase.InitUploadCommand) (*usecase.InitUploadResult, error) {
	objectID := uuid.NewString()
	key := fmt.Sprintf("%s/filings/staging/%s/%s", cmd.CourtID, objectID, cmd.Filename)

	upload := entity.NewFilingUpload(cmd.CourtID, cmd.CaseID, cmd.Purpose, key, cmd.Filename, cmd.ContentType, cmd.FileSize, cmd.InitiatedBy)
	upload.ID = objectID

	id, err := s.uploadRepo.Create(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("staging upload: %w", err)
	}
	upload.ID = id

	putURL, err := s.storage.PresignUpload(ctx, key, cmd.ContentType, presignWindow)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}

	return &usecase.InitUploadResult{Upload: upload, PutURL: putURL}, nil
}

// FinalizeUpload verifies the staged object landed in storage and marks it
// finalized, idempotent-failing on an already-finalized slot.
func (s *UploadService) FinalizeUpload(ctx context.Context, cmd usecase.FinalizeUploadCommand) (*entity.FilingUpload, error) {
	upload, err := s.uploadRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.UploadID)
	if err != nil {
		return nil, fmt.Errorf("finding upload: %w", err)
	}

	meta, err := s.storage.HeadObject(ctx, upload.StorageKey)
	if err != nil || meta == nil {
		return nil, entity.ErrUploadObjectMissing
	}

	if err := upload.Finalize(meta.ETag); err != nil {
		return nil, err
	}
	if err := s.uploadRepo.Update(ctx, upload); err != nil {
		return nil, fmt.Errorf("updating upload: %w", err)
	}
	return upload, nil
}

// ExpireStale sweeps staged uploads whose staging window elapsed without a
// finalize call, removing both the staged object and its row so they don't
// accumulate as orphaned storage.
func (s *UploadService) ExpireStale(ctx context.Context, batchSize int) (int, error) {
	expired, err := s.uploadRepo.FindExpiredUnfinalized(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("finding expired uploads: %w", err)
	}

	swept := 0
	for _, upload := range expired {
		if err := s.storage.Delete(ctx, upload.StorageKey); err != nil {
			slog.WarnContext(ctx, "failed to delete expired staged object",
				slog.String("upload_id", upload.ID), slog.String("error", err.Error()))
			continue
		}
		if err := s.uploadRepo.Delete(ctx, upload.CourtID, upload.CaseID, upload.ID); err != nil {
			slog.WarnContext(ctx, "failed to delete expired upload row",
				slog.String("upload_id", upload.ID), slog.String("error", err.Error()))
			continue
		}
		swept++
	}
	return swept, nil
}
