package caserepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new case repository.
func New(pool *pgxpool.Pool) port.CaseRepository {
	return &Repository{pool: pool}
}

// Repository implements port.CaseRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, c *entity.Case) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryCreate,
		c.CourtID, c.CaseNumber, c.Title, c.CaseType, c.Status, c.AssignedJudge, c.FiledAt, c.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", entity.ErrCaseAlreadyExists
		}
		return "", fmt.Errorf("inserting case: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, id string) (*entity.Case, error) {
	var c entity.Case
	err := r.pool.QueryRow(ctx, queryFindByID, courtID, id).Scan(scanArgs(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying case: %w", err)
	}
	return &c, nil
}

func (r *Repository) FindByCaseNumber(ctx context.Context, courtID, caseNumber string) (*entity.Case, error) {
	var c entity.Case
	err := r.pool.QueryRow(ctx, queryFindByCaseNumber, courtID, caseNumber).Scan(scanArgs(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying case by number: %w", err)
	}
	return &c, nil
}

func (r *Repository) FindByCourt(ctx context.Context, courtID string, filters port.CaseFilters) ([]*entity.Case, error) {
	limit, offset := filters.Limit, filters.Offset
	if limit <= 0 {
		limit = 50
	}

	var statusVal, typeVal string
	if filters.Status != nil {
		statusVal = string(*filters.Status)
	}
	if filters.Type != nil {
		typeVal = string(*filters.Type)
	}

	rows, err := r.pool.Query(ctx, queryFindByCourt, courtID, statusVal, typeVal, filters.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying cases: %w", err)
	}
	defer rows.Close()

	var result []*entity.Case
	for rows.Next() {
		var c entity.Case
		if err := rows.Scan(scanArgs(&c)...); err != nil {
			return nil, fmt.Errorf("scanning case: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

func (r *Repository) Update(ctx context.Context, c *entity.Case) error {
	result, err := r.pool.Exec(ctx, queryUpdate, c.ID, c.Status, c.AssignedJudge, c.ClosedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating case: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrCaseNotFound
	}
	return nil
}

func (r *Repository) CountByCourt(ctx context.Context, courtID string) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, queryCountByCourt, courtID).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting cases: %w", err)
	}
	return total, nil
}

func scanArgs(c *entity.Case) []any {
	return []any{
		&c.ID, &c.CourtID, &c.CaseNumber, &c.Title, &c.CaseType, &c.Status,
		&c.AssignedJudge, &c.FiledAt, &c.ClosedAt, &c.CreatedAt, &c.UpdatedAt,
	}
}
