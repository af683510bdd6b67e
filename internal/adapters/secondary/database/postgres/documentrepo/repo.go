package documentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new document repository.
func New(pool *pgxpool.Pool) port.DocumentRepository {
	return &Repository{pool: pool}
}

// Repository implements port.DocumentRepository using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) Create(ctx context.Context, d *entity.Document) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsert,
		d.CourtID, d.CaseID, d.Title, d.DocumentType, d.StorageKey, d.Checksum, d.FileSize, d.ContentType,
		d.IsSealed, d.SealingLevel, d.SealReasonCode, d.SealMotionID, d.UploadedBy,
		d.SourceAttachmentID, d.ReplacedByDocumentID, d.IsStricken, d.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting document: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Document, error) {
	var d entity.Document
	err := r.pool.QueryRow(ctx, queryFindByID, courtID, caseID, id).Scan(documentScanArgs(&d)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying document: %w", err)
	}
	return &d, nil
}

func (r *Repository) FindByCase(ctx context.Context, courtID, caseID string, filters port.DocumentFilters) ([]*entity.Document, error) {
	limit, offset := filters.Limit, filters.Offset
	if limit <= 0 {
		limit = 50
	}

	var docTypeVal string
	if filters.DocumentType != nil {
		docTypeVal = string(*filters.DocumentType)
	}

	rows, err := r.pool.Query(ctx, queryFindByCase,
		courtID, caseID, docTypeVal, filters.Sealed, filters.IncludeStruck, filters.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var result []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(documentScanArgs(&d)...); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

func (r *Repository) Update(ctx context.Context, d *entity.Document) error {
	result, err := r.pool.Exec(ctx, queryUpdate,
		d.ID, d.IsSealed, d.SealingLevel, d.SealReasonCode, d.SealMotionID,
		d.ReplacedByDocumentID, d.IsStricken,
	)
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrDocumentNotFound
	}
	return nil
}

func (r *Repository) CreateAttachment(ctx context.Context, a *entity.DocketAttachment) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsertAttachment,
		a.CourtID, a.CaseID, a.DocketEntryID, a.Filename, a.StorageKey, a.ContentType, a.FileSize,
		a.Checksum, a.UploadedBy, a.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting attachment: %w", err)
	}
	return id, nil
}

func (r *Repository) FindAttachmentByID(ctx context.Context, courtID, caseID, id string) (*entity.DocketAttachment, error) {
	var a entity.DocketAttachment
	err := r.pool.QueryRow(ctx, queryFindAttachmentByID, courtID, caseID, id).Scan(attachmentScanArgs(&a)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying attachment: %w", err)
	}
	return &a, nil
}

func (r *Repository) FindAttachmentsByEntry(ctx context.Context, courtID, caseID, entryID string) ([]*entity.DocketAttachment, error) {
	rows, err := r.pool.Query(ctx, queryFindAttachmentsByEntry, courtID, caseID, entryID)
	if err != nil {
		return nil, fmt.Errorf("querying attachments: %w", err)
	}
	defer rows.Close()

	var result []*entity.DocketAttachment
	for rows.Next() {
		var a entity.DocketAttachment
		if err := rows.Scan(attachmentScanArgs(&a)...); err != nil {
			return nil, fmt.Errorf("scanning attachment: %w", err)
		}
		result = append(result, &a)
	}
	return result, rows.Err()
}

func (r *Repository) UpdateAttachment(ctx context.Context, a *entity.DocketAttachment) error {
	result, err := r.pool.Exec(ctx, queryUpdateAttachment, a.ID, a.PromotedToID)
	if err != nil {
		return fmt.Errorf("updating attachment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrAttachmentNotFound
	}
	return nil
}

func documentScanArgs(d *entity.Document) []any {
	return []any{
		&d.ID, &d.CourtID, &d.CaseID, &d.Title, &d.DocumentType, &d.StorageKey, &d.Checksum,
		&d.FileSize, &d.ContentType, &d.IsSealed, &d.SealingLevel, &d.SealReasonCode, &d.SealMotionID,
		&d.UploadedBy, &d.SourceAttachmentID, &d.ReplacedByDocumentID, &d.IsStricken, &d.CreatedAt,
	}
}

func attachmentScanArgs(a *entity.DocketAttachment) []any {
	return []any{
		&a.ID, &a.CourtID, &a.CaseID, &a.DocketEntryID, &a.Filename, &a.StorageKey,
		&a.ContentType, &a.FileSize, &a.Checksum, &a.PromotedToID, &a.UploadedBy, &a.CreatedAt,
	}
}
