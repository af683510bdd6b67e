package documenteventrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new document event repository.
func New(pool *pgxpool.Pool) port.DocumentEventRepository {
	return &Repository{pool: pool}
}

// Repository implements port.DocumentEventRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, e *entity.DocumentEvent) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsert,
		e.CourtID, e.CaseID, e.DocumentID, e.EventType, e.Actor, e.Detail, e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting document event: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.DocumentEvent, error) {
	rows, err := r.pool.Query(ctx, queryFindByDocument, courtID, caseID, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying document events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *Repository) ExistsPromotedForAttachment(ctx context.Context, courtID, caseID, attachmentID string) (*entity.DocumentEvent, bool, error) {
	var e entity.DocumentEvent
	err := r.pool.QueryRow(ctx, queryFindPromotedForAttachment, courtID, caseID, attachmentID).Scan(scanArgs(&e)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying promoted event for attachment: %w", err)
	}
	return &e, true, nil
}

func (r *Repository) FindByCase(ctx context.Context, courtID, caseID string, limit, offset int) ([]*entity.DocumentEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, queryFindByCase, courtID, caseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying case document events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*entity.DocumentEvent, error) {
	var result []*entity.DocumentEvent
	for rows.Next() {
		var e entity.DocumentEvent
		if err := rows.Scan(scanArgs(&e)...); err != nil {
			return nil, fmt.Errorf("scanning document event: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

func scanArgs(e *entity.DocumentEvent) []any {
	return []any{&e.ID, &e.CourtID, &e.CaseID, &e.DocumentID, &e.EventType, &e.Actor, &e.Detail, &e.CreatedAt}
}
