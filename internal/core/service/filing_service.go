package service

import (
	"encoding/json"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewFilingService creates a new Filing Submission Pipeline service.
func NewFilingService(
	filingRepo port.FilingRepository,
	caseRepo port.CaseRepository,
	uploadRepo port.FilingUploadRepository,
	partyRepo port.PartyRepository,
	repRepo port.RepresentationRepository,
) usecase.FilingUseCase {
	return &FilingService{
		filingRepo: filingRepo,
		caseRepo:   caseRepo,
		uploadRepo: uploadRepo,
		partyRepo:  partyRepo,
		repRepo:    repRepo,
	}
}

// FilingService implements the Filing Submission Pipeline.
type FilingService struct {
	filingRepo port.FilingRepository
	caseRepo   port.CaseRepository
	uploadRepo port.FilingUploadRepository
	partyRepo  port.PartyRepository
	repRepo    port.RepresentationRepository
}

// ValidateFiling runs the pipeline's validation rules without committing
// anything, always returning a populated ValidationError (callers check
// HasErrors, never the returned Go error, for the 200-with-body contract).
func (s *FilingService) ValidateFiling(ctx context.Context, cmd usecase.ValidateFilingCommand) (*entity.ValidationError, error) {
	result := &entity.ValidationError{}

	if cmd.FiledBy == "" {
		result.Issues = append(result.Issues, entity.ValidationIssue{Field: "filed_by", Message: "filed_by is required", Severity: entity.SeverityError})
	}
	if !cmd.DocumentType.IsValid() {
		result.Issues = append(result.Issues, entity.ValidationIssue{Field: "document_type", Message: "unknown document type", Severity: entity.SeverityError})
	}

	if _, err := s.caseRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID); err != nil {
		result.Issues = append(result.Issues, entity.ValidationIssue{Field: "case_id", Message: "case does not exist in this court", Severity: entity.SeverityError})
	}

	if cmd.UploadID == nil {
		result.Issues = append(result.Issues, entity.ValidationIssue{Field: "upload_id", Message: "no file attached", Severity: entity.SeverityWarning})
	} else {
		upload, err := s.uploadRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, *cmd.UploadID)
		if err != nil {
			result.Issues = append(result.Issues, entity.ValidationIssue{Field: "upload_id", Message: "upload not found", Severity: entity.SeverityError})
		} else if !upload.Finalized {
			result.Issues = append(result.Issues, entity.ValidationIssue{Field: "upload_id", Message: "upload has not been finalized", Severity: entity.SeverityError})
		}
	}

	return result, nil
}

// SubmitFiling runs the full pipeline: validate, create document, create
// docket entry, submit filing, seed service records, create NEF — as one
// transaction in the repository layer.
func (s *FilingService) SubmitFiling(ctx context.Context, cmd usecase.SubmitFilingCommand) (*entity.Filing, *entity.Nef, error) {
	validation, err := s.ValidateFiling(ctx, usecase.ValidateFilingCommand{
		CourtID:      cmd.CourtID,
		CaseID:       cmd.CaseID,
		DocumentType: cmd.DocumentType,
		FiledBy:      cmd.FiledBy,
		UploadID:     cmd.UploadID,
	})
	if err != nil {
		return nil, nil, err
	}
	if cmd.Title == "" {
		validation.Issues = append(validation.Issues, entity.ValidationIssue{Field: "title", Message: "title is required", Severity: entity.SeverityError})
	}
	if validation.HasErrors() {
		return nil, nil, validation
	}

	entryType, err := entity.EntryTypeForDocumentType(cmd.DocumentType)
	if err != nil {
		return nil, nil, err
	}
	filingType, err := entity.FilingTypeForDocumentType(cmd.DocumentType)
	if err != nil {
		filingType = entity.FilingTypeOther
	}

	var storageKey, checksum, contentType string
	var fileSize int64
	if cmd.UploadID != nil {
		upload, err := s.uploadRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, *cmd.UploadID)
		if err != nil {
			return nil, nil, fmt.Errorf("finding upload: %w", err)
		}
		storageKey, checksum, contentType, fileSize = upload.StorageKey, upload.Checksum, upload.ContentType, upload.FileSize
	} else {
		storageKey = fmt.Sprintf("%s/filings/%s/placeholder", cmd.CourtID, uuid.NewString())
		contentType = "application/octet-stream"
	}

	filing := entity.NewFiling(cmd.CourtID, cmd.CaseID, filingType, cmd.FiledBy)
	filing.ID = uuid.NewString()

	document := entity.NewDocument(cmd.CourtID, cmd.CaseID, cmd.Title, cmd.DocumentType, storageKey, checksum, contentType, fileSize, cmd.FiledBy)
	document.ID = uuid.NewString()

	isSealed, sealingLevel, reasonCode := resolveSealingState(cmd.IsSealed, cmd.SealingLevel, cmd.ReasonCode)
	document.IsSealed = isSealed
	document.SealingLevel = sealingLevel
	document.SealReasonCode = reasonCode

	recipients, activeParties, err := s.computeRecipients(ctx, cmd.CourtID, cmd.CaseID)
	if err != nil {
		return nil, nil, fmt.Errorf("computing NEF recipients: %w", err)
	}

	result, err := s.filingRepo.SubmitPipeline(ctx, port.SubmitPipelineInput{
		Filing:           filing,
		Document:         document,
		EntryType:        entryType,
		EntryDescription: fmt.Sprintf("Filing: %s", cmd.Title),
		EnteredBy:        cmd.FiledBy,
		Recipients:       recipients,
		ActiveParties:    activeParties,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("submitting filing pipeline: %w", err)
	}

	if err := filing.MarkFiled(result.DocumentID, result.DocketEntryID); err != nil {
		return nil, nil, err
	}
	filing.ID = result.FilingID

	nef := entity.NewNef(cmd.CourtID, cmd.CaseID, result.FilingID, result.DocketEntryID, "", recipients)
	nef.ID = result.NefID

	slog.Info("filing submitted",
		slog.String("case_id", cmd.CaseID),
		slog.String("filing_id", filing.ID),
		slog.Int("docket_number", result.EntryNumber),
	)
	return filing, nef, nil
}

// computeRecipients unions active parties and the attorneys representing
// them, reading both with a consistent snapshot for the submit transaction.
// It also returns each active party's service method so the pipeline can
// seed ServiceRecords correctly (§4.5).
func (s *FilingService) computeRecipients(ctx context.Context, courtID, caseID string) ([]entity.NefRecipient, []port.ActiveServiceParty, error) {
	parties, err := s.partyRepo.FindActiveByCase(ctx, courtID, caseID)
	if err != nil {
		return nil, nil, err
	}

	recipients := make([]entity.NefRecipient, 0, len(parties))
	activeParties := make([]port.ActiveServiceParty, 0, len(parties))
	for _, p := range parties {
		party := p
		recipients = append(recipients, entity.NefRecipient{
			PartyID:     &party.ID,
			Name:        party.Name,
			Email:       party.Email,
			Phone:       party.Phone,
			NefSMSOptIn: party.NefSMSOptIn,
		})
		activeParties = append(activeParties, port.ActiveServiceParty{
			PartyID: party.ID,
			Method:  party.ServiceMethod,
		})

		reps, err := s.repRepo.FindByParty(ctx, courtID, caseID, party.ID)
		if err != nil {
			return nil, nil, err
		}
		for _, r := range reps {
			if !r.IsActive() {
				continue
			}
			rep := r
			recipients = append(recipients, entity.NefRecipient{
				AttorneyID: &rep.AttorneyID,
				Name:       rep.AttorneyID,
			})
		}
	}
	return recipients, activeParties, nil
}

// resolveSealingState applies the Filing Submission Pipeline's sealing-state
// derivation (step 4): an omitted sealing level defaults to SealedCourtOnly
// when the filer requested sealing, otherwise Public; the reason code is
// dropped unless the filing is actually sealed.
func resolveSealingState(isSealedIn *bool, sealingLevelIn *entity.SealingLevel, reasonCodeIn *string) (bool, entity.SealingLevel, *string) {
	isSealed := isSealedIn != nil && *isSealedIn

	level := entity.SealingLevelPublic
	if sealingLevelIn != nil {
		level = *sealingLevelIn
	} else if isSealed {
		level = entity.SealingLevelSealedCourtOnly
	}
	isSealed = isSealed || level.IsSealed()

	var reasonCode *string
	if isSealed {
		reasonCode = reasonCodeIn
	}
	return isSealed, level, reasonCode
}

// GetFiling retrieves a filing.
func (s *FilingService) GetFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Filing, error) {
	f, err := s.filingRepo.FindByID(ctx, courtID, caseID, filingID)
	if err != nil {
		return nil, fmt.Errorf("finding filing %s: %w", filingID, err)
	}
	return f, nil
}

// ListByCase lists filings in a case with optional filters.
func (s *FilingService) ListByCase(ctx context.Context, courtID, caseID string, filters port.FilingFilters) ([]*entity.FilingListItem, error) {
	filings, err := s.filingRepo.FindByCase(ctx, courtID, caseID, filters)
	if err != nil {
		return nil, fmt.Errorf("listing filings: %w", err)
	}
	return filings, nil
}

// Accept terminally accepts a submitted filing.
func (s *FilingService) Accept(ctx context.Context, courtID, caseID, filingID string) (*entity.Filing, error) {
	f, err := s.filingRepo.FindByID(ctx, courtID, caseID, filingID)
	if err != nil {
		return nil, fmt.Errorf("finding filing: %w", err)
	}
	if f.Status == entity.FilingStatusFiled {
		if err := f.FlagForReview(); err != nil {
			return nil, err
		}
	}
	if err := f.Accept(); err != nil {
		return nil, err
	}
	if err := s.filingRepo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("updating filing: %w", err)
	}
	return f, nil
}

// Reject terminally rejects a submitted filing.
func (s *FilingService) Reject(ctx context.Context, courtID, caseID, filingID string, issues []entity.ValidationIssue) (*entity.Filing, error) {
	f, err := s.filingRepo.FindByID(ctx, courtID, caseID, filingID)
	if err != nil {
		return nil, fmt.Errorf("finding filing: %w", err)
	}
	if f.Status == entity.FilingStatusFiled {
		if err := f.FlagForReview(); err != nil {
			return nil, err
		}
	}
	payload, err := json.Marshal(issues)
	if err != nil {
		return nil, fmt.Errorf("marshaling rejection issues: %w", err)
	}
	if err := f.Reject(payload); err != nil {
		return nil, err
	}
	if err := s.filingRepo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("updating filing: %w", err)
	}
	return f, nil
}
