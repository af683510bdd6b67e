package filinguploadrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new filing upload repository.
func New(pool *pgxpool.Pool) port.FilingUploadRepository {
	return &Repository{pool: pool}
}

// Repository implements port.FilingUploadRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, u *entity.FilingUpload) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsert,
		u.CourtID, u.CaseID, u.Purpose, u.StorageKey, u.Filename, u.ContentType, u.FileSize,
		u.Checksum, u.InitiatedBy, u.Finalized, u.ExpiresAt, u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting filing upload: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.FilingUpload, error) {
	var u entity.FilingUpload
	err := r.pool.QueryRow(ctx, queryFindByID, courtID, caseID, id).Scan(scanArgs(&u)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying filing upload: %w", err)
	}
	return &u, nil
}

func (r *Repository) Update(ctx context.Context, u *entity.FilingUpload) error {
	result, err := r.pool.Exec(ctx, queryUpdate, u.ID, u.Checksum, u.Finalized, u.FinalizedAt)
	if err != nil {
		return fmt.Errorf("updating filing upload: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrUploadNotFound
	}
	return nil
}

func (r *Repository) FindExpiredUnfinalized(ctx context.Context, limit int) ([]*entity.FilingUpload, error) {
	rows, err := r.pool.Query(ctx, queryFindExpiredUnfinalized, limit)
	if err != nil {
		return nil, fmt.Errorf("querying expired filing uploads: %w", err)
	}
	defer rows.Close()

	var result []*entity.FilingUpload
	for rows.Next() {
		var u entity.FilingUpload
		if err := rows.Scan(scanArgs(&u)...); err != nil {
			return nil, fmt.Errorf("scanning filing upload: %w", err)
		}
		result = append(result, &u)
	}
	return result, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, courtID, caseID, id string) error {
	result, err := r.pool.Exec(ctx, queryDeleteUpload, courtID, caseID, id)
	if err != nil {
		return fmt.Errorf("deleting filing upload: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrUploadNotFound
	}
	return nil
}

func scanArgs(u *entity.FilingUpload) []any {
	return []any{
		&u.ID, &u.CourtID, &u.CaseID, &u.Purpose, &u.StorageKey, &u.Filename, &u.ContentType,
		&u.FileSize, &u.Checksum, &u.InitiatedBy, &u.Finalized, &u.ExpiresAt, &u.CreatedAt, &u.FinalizedAt,
	}
}
