package filingrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/docketentryrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/jobs"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// New creates a new filing repository. riverClient is used to enqueue NEF
// delivery jobs inside the same transaction that commits SubmitPipeline, so
// the job is never visible to a worker before the filing it belongs to.
func New(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) port.FilingRepository {
	return &Repository{pool: pool, river: riverClient}
}

// Repository implements port.FilingRepository using PostgreSQL.
type Repository struct {
	pool  *pgxpool.Pool
	river *river.Client[pgx.Tx]
}

func (r *Repository) Create(ctx context.Context, f *entity.Filing) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, queryInsertFiling,
		f.CourtID, f.CaseID, f.FilingType, f.FiledBy, f.FiledDate, f.Status,
		f.ValidationIssues, f.DocumentID, f.DocketEntryID, f.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting filing: %w", err)
	}
	return id, nil
}

func (r *Repository) FindByID(ctx context.Context, courtID, caseID, id string) (*entity.Filing, error) {
	var f entity.Filing
	err := r.pool.QueryRow(ctx, queryFindByID, courtID, caseID, id).Scan(
		&f.ID, &f.CourtID, &f.CaseID, &f.FilingType, &f.FiledBy, &f.FiledDate, &f.Status,
		&f.ValidationIssues, &f.DocumentID, &f.DocketEntryID, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrFilingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying filing: %w", err)
	}
	return &f, nil
}

func (r *Repository) FindByCase(ctx context.Context, courtID, caseID string, filters port.FilingFilters) ([]*entity.FilingListItem, error) {
	limit, offset := filters.Limit, filters.Offset
	if limit <= 0 {
		limit = 50
	}

	var status, filingType string
	if filters.Status != nil {
		status = string(*filters.Status)
	}
	if filters.FilingType != nil {
		filingType = string(*filters.FilingType)
	}
	var filedBy string
	if filters.FiledBy != nil {
		filedBy = *filters.FiledBy
	}

	rows, err := r.pool.Query(ctx, queryFindByCase, courtID, caseID, status, filingType, filedBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying filings: %w", err)
	}
	defer rows.Close()

	var result []*entity.FilingListItem
	for rows.Next() {
		var f entity.FilingListItem
		if err := rows.Scan(
			&f.ID, &f.CourtID, &f.CaseID, &f.FilingType, &f.FiledBy, &f.FiledDate, &f.Status,
			&f.DocumentID, &f.DocketEntryID, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning filing: %w", err)
		}
		result = append(result, &f)
	}
	return result, rows.Err()
}

func (r *Repository) Update(ctx context.Context, f *entity.Filing) error {
	result, err := r.pool.Exec(ctx, queryUpdateFiling,
		f.ID, f.Status, f.ValidationIssues, f.DocumentID, f.DocketEntryID, f.CourtID, f.CaseID,
	)
	if err != nil {
		return fmt.Errorf("updating filing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrFilingNotFound
	}
	return nil
}

// SubmitPipeline runs the document, docket entry, filing, service record and
// NEF writes that a filing submission requires as one transaction serialized
// per case via pg_advisory_xact_lock — the same locking discipline
// docketentryrepo uses for standalone entries, reused here through
// docketentryrepo.CreateNextTx so both paths can never race each other for
// the same case's next entry number.
func (r *Repository) SubmitPipeline(ctx context.Context, input port.SubmitPipelineInput) (*port.SubmitPipelineResult, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("starting filing submission transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, queryAdvisoryLock, input.Filing.CaseID); err != nil {
		return nil, fmt.Errorf("acquiring filing submission lock: %w", err)
	}

	doc := input.Document
	var documentID string
	err = tx.QueryRow(ctx, queryInsertDocument,
		doc.CourtID, doc.CaseID, doc.Title, doc.DocumentType, doc.StorageKey, doc.Checksum, doc.FileSize,
		doc.ContentType, doc.IsSealed, doc.SealingLevel, doc.SealReasonCode, doc.SealMotionID,
		doc.UploadedBy, doc.SourceAttachmentID, doc.ReplacedByDocumentID, doc.IsStricken, doc.CreatedAt,
	).Scan(&documentID)
	if err != nil {
		return nil, fmt.Errorf("inserting filing document: %w", err)
	}
	doc.ID = documentID

	entry := entity.NewDocketEntry(input.Filing.CourtID, input.Filing.CaseID, 0, input.EntryType, input.EntryDescription, input.EnteredBy)
	entry.DocumentID = &documentID
	entry.IsSealed, entry.SealingLevel = input.EntrySealing()
	entryID, err := docketentryrepo.CreateNextTx(ctx, tx, input.Filing.CaseID, entry)
	if err != nil {
		return nil, fmt.Errorf("creating docket entry for filing: %w", err)
	}
	entry.ID = entryID

	if err := input.Filing.MarkFiled(documentID, entryID); err != nil {
		return nil, fmt.Errorf("transitioning filing to filed: %w", err)
	}
	var filingID string
	err = tx.QueryRow(ctx, queryInsertFiling,
		input.Filing.CourtID, input.Filing.CaseID, input.Filing.FilingType, input.Filing.FiledBy,
		input.Filing.FiledDate, input.Filing.Status, input.Filing.ValidationIssues,
		input.Filing.DocumentID, input.Filing.DocketEntryID, input.Filing.CreatedAt,
	).Scan(&filingID)
	if err != nil {
		return nil, fmt.Errorf("inserting filing: %w", err)
	}
	input.Filing.ID = filingID

	for _, ap := range input.ActiveParties {
		sr := entity.NewServiceRecord(input.Filing.CourtID, input.Filing.CaseID, documentID, ap.PartyID, ap.Method)
		sr.ServedBy = input.EnteredBy
		sr.Attempts = 1
		if ap.Method == entity.ServiceMethodNEF {
			sr.Successful = true
			sr.ProofOfServiceFiled = true
		}
		if _, err := tx.Exec(ctx, queryInsertServiceRecord,
			sr.CourtID, sr.CaseID, sr.DocumentID, sr.PartyID, sr.Method, sr.ServedBy,
			sr.Successful, sr.ProofOfServiceFiled, sr.Attempts, sr.CertificateText, sr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("seeding service record for party %s: %w", ap.PartyID, err)
		}
	}

	nef := entity.NewNef(input.Filing.CourtID, input.Filing.CaseID, filingID, entryID, "", input.Recipients)
	var nefID string
	err = tx.QueryRow(ctx, queryInsertNef,
		nef.CourtID, nef.CaseID, nef.FilingID, nef.DocketEntryID, nef.Status, nef.RecipientSnapshot,
		nef.HTMLSnapshot, nef.CreatedAt,
	).Scan(&nefID)
	if err != nil {
		return nil, fmt.Errorf("inserting nef: %w", err)
	}

	if r.river != nil {
		_, err = r.river.InsertTx(ctx, tx, jobs.NefDeliveryArgs{
			CourtID: input.Filing.CourtID,
			CaseID:  input.Filing.CaseID,
			NefID:   nefID,
		}, nil)
		if err != nil {
			return nil, fmt.Errorf("enqueuing nef delivery job: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing filing submission transaction: %w", err)
	}

	return &port.SubmitPipelineResult{
		FilingID:      filingID,
		DocumentID:    documentID,
		DocketEntryID: entryID,
		EntryNumber:   entry.EntryNumber,
		NefID:         nefID,
	}, nil
}
