package servicerecordrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new service record repository.
func New(pool *pgxpool.Pool) port.ServiceRecordRepository {
	return &Repository{pool: pool}
}

// Repository implements port.ServiceRecordRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// CreateBatch seeds service records for multiple parties in one round trip
// via a pgx.Batch, rather than one insert per party.
func (r *Repository) CreateBatch(ctx context.Context, records []*entity.ServiceRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(queryInsertServiceRecord,
			rec.CourtID, rec.CaseID, rec.DocumentID, rec.PartyID, rec.Method, rec.ServedBy,
			rec.Successful, rec.ProofOfServiceFiled, rec.Attempts, rec.CertificateText, rec.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range records {
		if err := results.QueryRow().Scan(&records[i].ID); err != nil {
			return fmt.Errorf("inserting service record %d: %w", i, err)
		}
	}
	return nil
}

func (r *Repository) FindByDocument(ctx context.Context, courtID, caseID, documentID string) ([]*entity.ServiceRecord, error) {
	rows, err := r.pool.Query(ctx, queryFindByDocument, courtID, caseID, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying service records: %w", err)
	}
	defer rows.Close()

	var result []*entity.ServiceRecord
	for rows.Next() {
		var rec entity.ServiceRecord
		if err := rows.Scan(scanArgs(&rec)...); err != nil {
			return nil, fmt.Errorf("scanning service record: %w", err)
		}
		result = append(result, &rec)
	}
	return result, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.ServiceRecord, error) {
	var rec entity.ServiceRecord
	err := r.pool.QueryRow(ctx, queryFindServiceRecordByID, courtID, caseID, id).Scan(scanArgs(&rec)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrServiceRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying service record: %w", err)
	}
	return &rec, nil
}

func (r *Repository) Update(ctx context.Context, rec *entity.ServiceRecord) error {
	result, err := r.pool.Exec(ctx, queryUpdateServiceRecord,
		rec.ID, rec.ServedBy, rec.Successful, rec.ProofOfServiceFiled, rec.Attempts, rec.CertificateText,
		rec.CourtID, rec.CaseID,
	)
	if err != nil {
		return fmt.Errorf("updating service record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrServiceRecordNotFound
	}
	return nil
}

func scanArgs(rec *entity.ServiceRecord) []any {
	return []any{
		&rec.ID, &rec.CourtID, &rec.CaseID, &rec.DocumentID, &rec.PartyID, &rec.Method,
		&rec.ServedBy, &rec.Successful, &rec.ProofOfServiceFiled, &rec.Attempts,
		&rec.CertificateText, &rec.CreatedAt,
	}
}
