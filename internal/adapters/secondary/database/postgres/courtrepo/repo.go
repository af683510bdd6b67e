package courtrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new court repository.
func New(pool *pgxpool.Pool) port.CourtRepository {
	return &Repository{pool: pool}
}

// Repository implements port.CourtRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// FindByCode finds a court by its X-Court-District header value.
func (r *Repository) FindByCode(ctx context.Context, courtCode string) (*entity.Court, error) {
	var c entity.Court
	err := r.pool.QueryRow(ctx, queryFindByCode, courtCode).Scan(&c.ID, &c.CourtName, &c.CourtCode, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying court by code: %w", err)
	}
	return &c, nil
}

// FindByID finds a court by ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*entity.Court, error) {
	var c entity.Court
	err := r.pool.QueryRow(ctx, queryFindByID, id).Scan(&c.ID, &c.CourtName, &c.CourtCode, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying court by id: %w", err)
	}
	return &c, nil
}

// List returns every registered court.
func (r *Repository) List(ctx context.Context) ([]*entity.Court, error) {
	rows, err := r.pool.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("querying courts: %w", err)
	}
	defer rows.Close()

	var courts []*entity.Court
	for rows.Next() {
		var c entity.Court
		if err := rows.Scan(&c.ID, &c.CourtName, &c.CourtCode, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning court: %w", err)
		}
		courts = append(courts, &c)
	}
	return courts, rows.Err()
}
