package nefrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new NEF repository.
func New(pool *pgxpool.Pool) port.NefRepository {
	return &Repository{pool: pool}
}

// Repository implements port.NefRepository using PostgreSQL. recipient_snapshot
// is stored as JSONB; pgx's default codec marshals/unmarshals the
// []entity.NefRecipient slice directly.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, n *entity.Nef) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsertNef,
		n.CourtID, n.CaseID, n.FilingID, n.DocketEntryID, n.Status, n.RecipientSnapshot,
		n.HTMLSnapshot, n.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting nef: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Nef, error) {
	var n entity.Nef
	err := r.pool.QueryRow(ctx, queryFindNefByID, courtID, caseID, id).Scan(scanArgs(&n)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrNefNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying nef: %w", err)
	}
	return &n, nil
}

func (r *Repository) FindByFiling(ctx context.Context, courtID, caseID, filingID string) (*entity.Nef, error) {
	var n entity.Nef
	err := r.pool.QueryRow(ctx, queryFindNefByFiling, courtID, caseID, filingID).Scan(scanArgs(&n)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrNefNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying nef by filing: %w", err)
	}
	return &n, nil
}

func (r *Repository) Update(ctx context.Context, n *entity.Nef) error {
	result, err := r.pool.Exec(ctx, queryUpdateNef, n.ID, n.Status, n.RecipientSnapshot, n.DeliveredAt, n.CourtID, n.CaseID)
	if err != nil {
		return fmt.Errorf("updating nef: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrNefNotFound
	}
	return nil
}

func scanArgs(n *entity.Nef) []any {
	return []any{
		&n.ID, &n.CourtID, &n.CaseID, &n.FilingID, &n.DocketEntryID, &n.Status,
		&n.RecipientSnapshot, &n.HTMLSnapshot, &n.CreatedAt, &n.DeliveredAt,
	}
}
