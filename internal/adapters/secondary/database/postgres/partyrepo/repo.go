package partyrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new party repository.
func New(pool *pgxpool.Pool) port.PartyRepository {
	return &Repository{pool: pool}
}

// Repository implements port.PartyRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, p *entity.Party) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsertParty,
		p.CourtID, p.CaseID, p.Name, p.PartyType, p.PartyRole, p.Status, p.ServiceMethod,
		p.Email, p.Phone, p.NefSMSOptIn, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting party: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Party, error) {
	var p entity.Party
	err := r.pool.QueryRow(ctx, queryFindPartyByID, courtID, caseID, id).Scan(scanPartyArgs(&p)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrPartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying party: %w", err)
	}
	return &p, nil
}

func (r *Repository) FindByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error) {
	return r.queryParties(ctx, queryFindPartiesByCase, courtID, caseID)
}

func (r *Repository) FindActiveByCase(ctx context.Context, courtID, caseID string) ([]*entity.Party, error) {
	return r.queryParties(ctx, queryFindActivePartiesByCase, courtID, caseID)
}

func (r *Repository) queryParties(ctx context.Context, query, courtID, caseID string) ([]*entity.Party, error) {
	rows, err := r.pool.Query(ctx, query, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("querying parties: %w", err)
	}
	defer rows.Close()

	var result []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(scanPartyArgs(&p)...); err != nil {
			return nil, fmt.Errorf("scanning party: %w", err)
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

func (r *Repository) Update(ctx context.Context, p *entity.Party) error {
	result, err := r.pool.Exec(ctx, queryUpdateParty,
		p.ID, p.Status, p.ServiceMethod, p.Email, p.Phone, p.NefSMSOptIn, p.CourtID, p.CaseID,
	)
	if err != nil {
		return fmt.Errorf("updating party: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrPartyNotFound
	}
	return nil
}

func scanPartyArgs(p *entity.Party) []any {
	return []any{
		&p.ID, &p.CourtID, &p.CaseID, &p.Name, &p.PartyType, &p.PartyRole, &p.Status,
		&p.ServiceMethod, &p.Email, &p.Phone, &p.NefSMSOptIn, &p.CreatedAt,
	}
}

// RepresentationRepository implements port.RepresentationRepository using
// PostgreSQL. It is a distinct type from Repository (rather than bolting
// representation methods onto the party repository) because it has its own
// table and its own lookup shapes.
type RepresentationRepository struct {
	pool *pgxpool.Pool
}

// NewRepresentationRepository creates a new attorney-representation repository.
func NewRepresentationRepository(pool *pgxpool.Pool) port.RepresentationRepository {
	return &RepresentationRepository{pool: pool}
}

func (r *RepresentationRepository) Create(ctx context.Context, rep *entity.Representation) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsertRepresentation,
		rep.CourtID, rep.CaseID, rep.PartyID, rep.AttorneyID, rep.AttorneyBar, rep.LeadCounsel,
		rep.StartedAt, rep.EndedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting representation: %w", err)
	}
	return id, nil
}

func (r *RepresentationRepository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Representation, error) {
	var rep entity.Representation
	err := r.pool.QueryRow(ctx, queryFindRepresentationByID, courtID, caseID, id).Scan(scanRepresentationArgs(&rep)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrRepresentationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying representation: %w", err)
	}
	return &rep, nil
}

func (r *RepresentationRepository) FindByParty(ctx context.Context, courtID, caseID, partyID string) ([]*entity.Representation, error) {
	rows, err := r.pool.Query(ctx, queryFindRepresentationsByParty, courtID, caseID, partyID)
	if err != nil {
		return nil, fmt.Errorf("querying representations: %w", err)
	}
	defer rows.Close()
	return scanRepresentations(rows)
}

func (r *RepresentationRepository) FindActiveByAttorney(ctx context.Context, courtID, caseID, attorneyID string) ([]*entity.Representation, error) {
	rows, err := r.pool.Query(ctx, queryFindActiveRepresentationsByAttorney, courtID, caseID, attorneyID)
	if err != nil {
		return nil, fmt.Errorf("querying active representations: %w", err)
	}
	defer rows.Close()
	return scanRepresentations(rows)
}

func (r *RepresentationRepository) Update(ctx context.Context, rep *entity.Representation) error {
	result, err := r.pool.Exec(ctx, queryUpdateRepresentation, rep.ID, rep.EndedAt, rep.CourtID, rep.CaseID)
	if err != nil {
		return fmt.Errorf("updating representation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrRepresentationNotFound
	}
	return nil
}

func scanRepresentations(rows pgx.Rows) ([]*entity.Representation, error) {
	var result []*entity.Representation
	for rows.Next() {
		var rep entity.Representation
		if err := rows.Scan(scanRepresentationArgs(&rep)...); err != nil {
			return nil, fmt.Errorf("scanning representation: %w", err)
		}
		result = append(result, &rep)
	}
	return result, rows.Err()
}

func scanRepresentationArgs(rep *entity.Representation) []any {
	return []any{
		&rep.ID, &rep.CourtID, &rep.CaseID, &rep.PartyID, &rep.AttorneyID, &rep.AttorneyBar,
		&rep.LeadCounsel, &rep.StartedAt, &rep.EndedAt,
	}
}
