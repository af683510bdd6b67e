package port

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// PartyRepository defines the interface for case-party data access.
type PartyRepository interface {
	// Create adds a party to a case.
	Create(ctx context.Context, p *entity.Party) (string, error)

	// FindByID finds a party by ID within a court/case.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Party, error)

	// FindByCase lists all parties in a case, active and inactive.
	FindByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error)

	// FindActiveByCase lists only active parties, used to seed NEF recipients.
	FindActiveByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error)

	// Update persists changes to a party (status, contact info).
	Update(ctx context.Context, p *entity.Party) error
}

// RepresentationRepository defines the interface for attorney-representation
// data access.
type RepresentationRepository interface {
	// Create records a new representation.
	Create(ctx context.Context, r *entity.Representation) (string, error)

	// FindByID finds a representation by ID.
	FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Representation, error)

	// FindByParty lists representations (active and ended) for a party.
	FindByParty(ctx context.Context, courtID, caseID, partyID string) ([]*entity.Representation, error)

	// FindActiveByAttorney lists a given attorney's active representations
	// within a case, used by the Role Resolver to grant case-scoped access.
	FindActiveByAttorney(ctx context.Context, courtID, caseID, attorneyID string) ([]*entity.Representation, error)

	// Update persists changes to a representation (withdrawal).
	Update(ctx context.Context, r *entity.Representation) error
}
