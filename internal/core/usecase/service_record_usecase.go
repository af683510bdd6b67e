package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// CreateServiceRecordCommand represents the command to record service owed
// to a single party for a single document.
type CreateServiceRecordCommand struct {
	CourtID    string
	CaseID     string
	DocumentID string
	PartyID    string
	Method     entity.ServiceMethod
}

// CompleteServiceRecordCommand represents the command to mark service
// accomplished.
type CompleteServiceRecordCommand struct {
	CourtID         string
	CaseID          string
	ServiceRecordID string
	ServedBy        string
	CertificateText *string
}

// ServiceRecordUseCase defines the input port for service-of-process record
// operations.
type ServiceRecordUseCase interface {
	// CreateRecord records a single service obligation.
	CreateRecord(ctx context.Context, cmd CreateServiceRecordCommand) (*entity.ServiceRecord, error)

	// BulkCreateForDocument seeds a service record for every active party on
	// the document's case.
	BulkCreateForDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.ServiceRecord, error)

	// Complete marks a service record as accomplished.
	Complete(ctx context.Context, cmd CompleteServiceRecordCommand) (*entity.ServiceRecord, error)
}

// NefUseCase defines the input port for Notice of Electronic Filing reads.
type NefUseCase interface {
	// GetByFiling retrieves the NEF generated for a filing.
	GetByFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Nef, error)
}
