package docketentryrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new docket entry repository.
func New(pool *pgxpool.Pool) port.DocketEntryRepository {
	return &Repository{pool: pool}
}

// Repository implements port.DocketEntryRepository using PostgreSQL. Entry
// numbering is serialized per case with a transaction-scoped advisory lock
// keyed on the case ID, so two concurrent filings never receive the same
// EntryNumber.
type Repository struct {
	pool *pgxpool.Pool
}

func (r *Repository) CreateNext(ctx context.Context, courtID, caseID string, e *entity.DocketEntry) (string, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", fmt.Errorf("starting docket entry transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := CreateNextTx(ctx, tx, caseID, e)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("committing docket entry transaction: %w", err)
	}
	return id, nil
}

// CreateNextTx assigns the next sequence number and inserts e within tx. It
// is exported so FilingRepository.SubmitPipeline can share the same locking
// discipline inside its own transaction.
func CreateNextTx(ctx context.Context, tx pgx.Tx, caseID string, e *entity.DocketEntry) (string, error) {
	if _, err := tx.Exec(ctx, queryAdvisoryLock, caseID); err != nil {
		return "", fmt.Errorf("acquiring docket entry lock: %w", err)
	}

	var next int
	if err := tx.QueryRow(ctx, queryNextEntryNumber, caseID).Scan(&next); err != nil {
		return "", fmt.Errorf("computing next entry number: %w", err)
	}
	e.EntryNumber = next

	var id string
	err := tx.QueryRow(ctx, queryInsert,
		e.CourtID, e.CaseID, e.EntryNumber, e.EntryType, e.Description, e.DocumentID,
		e.EnteredBy, e.EntryDate, e.IsSealed, e.IsExParte, e.SealingLevel,
		e.RelatedEntryNumbers, e.ServiceListPartyIDs, e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting docket entry: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.DocketEntry, error) {
	var e entity.DocketEntry
	err := r.pool.QueryRow(ctx, queryFindByID, courtID, caseID, id).Scan(scanArgs(&e)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrDocketEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying docket entry: %w", err)
	}
	return &e, nil
}

func (r *Repository) FindByCase(ctx context.Context, courtID, caseID string, filters port.DocketEntryFilters) ([]*entity.DocketEntry, error) {
	limit, offset := filters.Limit, filters.Offset
	if limit <= 0 {
		limit = 50
	}

	var entryTypeVal string
	if filters.EntryType != nil {
		entryTypeVal = string(*filters.EntryType)
	}
	var sealedFilter *bool = filters.Sealed

	rows, err := r.pool.Query(ctx, queryFindByCase, courtID, caseID, entryTypeVal, sealedFilter, filters.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying docket entries: %w", err)
	}
	defer rows.Close()

	var result []*entity.DocketEntry
	for rows.Next() {
		var e entity.DocketEntry
		if err := rows.Scan(scanArgs(&e)...); err != nil {
			return nil, fmt.Errorf("scanning docket entry: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

func (r *Repository) Search(ctx context.Context, courtID string, filters port.DocketEntrySearchFilters) ([]*entity.DocketEntry, error) {
	limit, offset := filters.Limit, filters.Offset
	if limit <= 0 {
		limit = 50
	}

	var entryTypeVal string
	if filters.EntryType != nil {
		entryTypeVal = string(*filters.EntryType)
	}

	rows, err := r.pool.Query(ctx, querySearch, courtID, filters.CaseID, entryTypeVal, filters.Text, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("searching docket entries: %w", err)
	}
	defer rows.Close()

	var result []*entity.DocketEntry
	for rows.Next() {
		var e entity.DocketEntry
		if err := rows.Scan(scanArgs(&e)...); err != nil {
			return nil, fmt.Errorf("scanning docket entry: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

func (r *Repository) LinkDocument(ctx context.Context, courtID, caseID, entryID, documentID string) error {
	result, err := r.pool.Exec(ctx, queryLinkDocument, courtID, caseID, entryID, documentID)
	if err != nil {
		return fmt.Errorf("linking document to docket entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrDocketEntryNotFound
	}
	return nil
}

func (r *Repository) Statistics(ctx context.Context, courtID, caseID string) (*entity.DocketStatistics, error) {
	rows, err := r.pool.Query(ctx, queryStatisticsByType, courtID, caseID)
	if err != nil {
		return nil, fmt.Errorf("querying docket statistics: %w", err)
	}
	defer rows.Close()

	stats := &entity.DocketStatistics{
		CaseID:      caseID,
		ByEntryType: make(map[entity.EntryType]int),
	}
	for rows.Next() {
		var entryType entity.EntryType
		var count int
		if err := rows.Scan(&entryType, &count); err != nil {
			return nil, fmt.Errorf("scanning docket statistics: %w", err)
		}
		stats.ByEntryType[entryType] = count
		stats.TotalEntries += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.pool.QueryRow(ctx, querySealedCount, courtID, caseID).Scan(&stats.SealedEntries); err != nil {
		return nil, fmt.Errorf("counting sealed docket entries: %w", err)
	}

	return stats, nil
}

func (r *Repository) HasLinkedFiling(ctx context.Context, courtID, caseID, entryID string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, queryHasLinkedFiling, courtID, caseID, entryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking linked filing: %w", err)
	}
	return exists, nil
}

func (r *Repository) Delete(ctx context.Context, courtID, caseID, entryID string) error {
	result, err := r.pool.Exec(ctx, queryDelete, courtID, caseID, entryID)
	if err != nil {
		return fmt.Errorf("deleting docket entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrDocketEntryNotFound
	}
	return nil
}

func scanArgs(e *entity.DocketEntry) []any {
	return []any{
		&e.ID, &e.CourtID, &e.CaseID, &e.EntryNumber, &e.EntryType, &e.Description,
		&e.DocumentID, &e.EnteredBy, &e.EntryDate, &e.IsSealed, &e.IsExParte, &e.SealingLevel,
		&e.RelatedEntryNumbers, &e.ServiceListPartyIDs, &e.CreatedAt,
	}
}
