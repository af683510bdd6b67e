package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// AddPartyCommand represents the command to attach a new party to a case.
type AddPartyCommand struct {
	CourtID   string
	CaseID    string
	Name      string
	PartyType entity.PartyType
	PartyRole entity.PartyRole
	Email     *string
	Phone     *string
	NefSMSOptIn bool
}

// AddRepresentationCommand represents the command to record an attorney's
// appearance for a party.
type AddRepresentationCommand struct {
	CourtID     string
	CaseID      string
	PartyID     string
	AttorneyID  string
	AttorneyBar string
	LeadCounsel bool
}

// PartyUseCase defines the input port for party and representation
// operations.
type PartyUseCase interface {
	// AddParty attaches a new active party to a case.
	AddParty(ctx context.Context, cmd AddPartyCommand) (*entity.Party, error)

	// ListByCase lists every party in a case.
	ListByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error)

	// AddRepresentation records an attorney's appearance for a party.
	AddRepresentation(ctx context.Context, cmd AddRepresentationCommand) (*entity.Representation, error)

	// WithdrawRepresentation ends an attorney's representation.
	WithdrawRepresentation(ctx context.Context, courtID, caseID, representationID string) error
}
