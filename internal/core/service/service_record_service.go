package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewServiceRecordService creates a new service-of-process record service.
func NewServiceRecordService(recordRepo port.ServiceRecordRepository, partyRepo port.PartyRepository) usecase.ServiceRecordUseCase {
	return &ServiceRecordService{recordRepo: recordRepo, partyRepo: partyRepo}
}

// ServiceRecordService implements Service Records & NEF's record-keeping
// half (recipient computation and NEF assembly live in the Filing
// Submission Pipeline, which needs them inside its own transaction).
type ServiceRecordService struct {
	recordRepo port.ServiceRecordRepository
	partyRepo  port.PartyRepository
}

// CreateRecord records a single service obligation.
func (s *ServiceRecordService) CreateRecord(ctx context.Context, cmd usecase.CreateServiceRecordCommand) (*entity.ServiceRecord, error) {
	if !cmd.Method.IsValid() {
		return nil, entity.ErrInvalidServiceMethod
	}
	r := entity.NewServiceRecord(cmd.CourtID, cmd.CaseID, cmd.DocumentID, cmd.PartyID, cmd.Method)
	r.ID = uuid.NewString()
	if err := s.recordRepo.CreateBatch(ctx, []*entity.ServiceRecord{r}); err != nil {
		return nil, fmt.Errorf("creating service record: %w", err)
	}
	return r, nil
}

// BulkCreateForDocument seeds a service record for every active party on the
// document's case.
func (s *ServiceRecordService) BulkCreateForDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.ServiceRecord, error) {
	parties, err := s.partyRepo.FindActiveByCase(ctx, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing active parties: %w", err)
	}

	records := make([]*entity.ServiceRecord, 0, len(parties))
	for _, p := range parties {
		r := entity.NewServiceRecord(courtID, caseID, documentID, p.ID, p.ServiceMethod)
		r.ID = uuid.NewString()
		records = append(records, r)
	}
	if len(records) == 0 {
		return records, nil
	}
	if err := s.recordRepo.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("creating service records: %w", err)
	}
	return records, nil
}

// Complete marks a service record as accomplished.
func (s *ServiceRecordService) Complete(ctx context.Context, cmd usecase.CompleteServiceRecordCommand) (*entity.ServiceRecord, error) {
	r, err := s.recordRepo.FindByID(ctx, cmd.CourtID, cmd.CaseID, cmd.ServiceRecordID)
	if err != nil {
		return nil, fmt.Errorf("finding service record: %w", err)
	}
	r.Complete(cmd.ServedBy, cmd.CertificateText)
	if err := s.recordRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("updating service record: %w", err)
	}
	return r, nil
}

// NewNefService creates a new NEF read service.
func NewNefService(nefRepo port.NefRepository) usecase.NefUseCase {
	return &NefService{nefRepo: nefRepo}
}

// NefService implements NEF reads.
type NefService struct {
	nefRepo port.NefRepository
}

// GetByFiling retrieves the NEF generated for a filing.
func (s *NefService) GetByFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Nef, error) {
	nef, err := s.nefRepo.FindByFiling(ctx, courtID, caseID, filingID)
	if err != nil {
		return nil, fmt.Errorf("finding NEF for filing %s: %w", filingID, err)
	}
	return nef, nil
}
