//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// Ptr is a helper function to create a pointer to a value.
func Ptr[T any](v T) *T {
	return &v
}

// CreateTestCourt inserts a court and returns its ID.
func CreateTestCourt(t *testing.T, pool *pgxpool.Pool, courtName, courtCode string) string {
	t.Helper()
	ctx := context.Background()

	courtID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.courts (id, court_name, court_code, created_at)
		VALUES ($1, $2, $3, $4)`,
		courtID, courtName, courtCode, time.Now().UTC())
	require.NoError(t, err, "failed to create test court")

	return courtID
}

// CleanupCourt removes a test court.
func CleanupCourt(t *testing.T, pool *pgxpool.Pool, courtID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.courts WHERE id = $1", courtID)
}

// CreateTestCase inserts a case and returns its ID.
func CreateTestCase(t *testing.T, pool *pgxpool.Pool, courtID, caseNumber, title string, caseType entity.CaseType) string {
	t.Helper()
	ctx := context.Background()

	caseID := uuid.NewString()
	now := time.Now().UTC()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.cases (id, court_id, case_number, title, case_type, status, filed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		caseID, courtID, caseNumber, title, caseType, entity.CaseStatusOpen, now, now)
	require.NoError(t, err, "failed to create test case")

	return caseID
}

// CleanupCase removes a test case and all rows that reference it.
func CleanupCase(t *testing.T, pool *pgxpool.Pool, caseID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.document_events WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.nefs WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.service_records WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.filings WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.filing_uploads WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.representations WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.parties WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.docket_attachments WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.docket_entries WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.documents WHERE case_id = $1", caseID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.cases WHERE id = $1", caseID)
}

// CreateTestDocument inserts a document and returns its ID.
func CreateTestDocument(t *testing.T, pool *pgxpool.Pool, courtID, caseID, title string, docType entity.DocumentType, uploadedBy string) string {
	t.Helper()
	ctx := context.Background()

	documentID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.documents
			(id, court_id, case_id, title, document_type, storage_key, checksum, file_size, content_type,
			 is_sealed, sealing_level, uploaded_by, is_stricken, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		documentID, courtID, caseID, title, docType,
		"documents/"+documentID, "deadbeef", int64(1024), "application/pdf",
		false, entity.SealingLevelPublic, uploadedBy, false, time.Now().UTC())
	require.NoError(t, err, "failed to create test document")

	return documentID
}

// SealTestDocument sets a document's sealing level directly.
func SealTestDocument(t *testing.T, pool *pgxpool.Pool, documentID string, level entity.SealingLevel) {
	t.Helper()
	ctx := context.Background()
	_, err := pool.Exec(ctx, `UPDATE docket.documents SET is_sealed = true, sealing_level = $1 WHERE id = $2`, level, documentID)
	require.NoError(t, err, "failed to seal test document")
}

// CleanupDocument removes a test document.
func CleanupDocument(t *testing.T, pool *pgxpool.Pool, documentID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.document_events WHERE document_id = $1", documentID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.documents WHERE id = $1", documentID)
}

// CreateTestDocketEntry inserts a docket entry and returns its ID.
func CreateTestDocketEntry(t *testing.T, pool *pgxpool.Pool, courtID, caseID string, entryNumber int, entryType entity.EntryType, description, enteredBy string) string {
	t.Helper()
	ctx := context.Background()

	entryID := uuid.NewString()
	now := time.Now().UTC()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.docket_entries
			(id, court_id, case_id, entry_number, entry_type, description, entered_by, entry_date,
			 is_sealed, is_ex_parte, sealing_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entryID, courtID, caseID, entryNumber, entryType, description, enteredBy, now,
		false, false, entity.SealingLevelPublic, now)
	require.NoError(t, err, "failed to create test docket entry")

	return entryID
}

// CleanupDocketEntry removes a test docket entry.
func CleanupDocketEntry(t *testing.T, pool *pgxpool.Pool, entryID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.docket_attachments WHERE docket_entry_id = $1", entryID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.docket_entries WHERE id = $1", entryID)
}

// CreateTestParty inserts a party and returns its ID.
func CreateTestParty(t *testing.T, pool *pgxpool.Pool, courtID, caseID, name string, partyType entity.PartyType, role entity.PartyRole) string {
	t.Helper()
	ctx := context.Background()

	partyID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.parties
			(id, court_id, case_id, name, party_type, party_role, status, service_method, nef_sms_opt_in, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		partyID, courtID, caseID, name, partyType, role,
		entity.PartyStatusActive, entity.ServiceMethodNEF, false, time.Now().UTC())
	require.NoError(t, err, "failed to create test party")

	return partyID
}

// CleanupParty removes a test party and its representations.
func CleanupParty(t *testing.T, pool *pgxpool.Pool, partyID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.representations WHERE party_id = $1", partyID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.service_records WHERE party_id = $1", partyID)
	_, _ = pool.Exec(ctx, "DELETE FROM docket.parties WHERE id = $1", partyID)
}

// CreateTestRepresentation links an attorney to a party and returns the
// representation's ID.
func CreateTestRepresentation(t *testing.T, pool *pgxpool.Pool, courtID, caseID, partyID, attorneyID, attorneyBar string, leadCounsel bool) string {
	t.Helper()
	ctx := context.Background()

	repID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.representations
			(id, court_id, case_id, party_id, attorney_id, attorney_bar, lead_counsel, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		repID, courtID, caseID, partyID, attorneyID, attorneyBar, leadCounsel, time.Now().UTC())
	require.NoError(t, err, "failed to create test representation")

	return repID
}

// CreateTestFilingUpload stages an upload slot and returns its ID.
func CreateTestFilingUpload(t *testing.T, pool *pgxpool.Pool, courtID, caseID string, purpose entity.UploadPurpose, initiatedBy string) string {
	t.Helper()
	ctx := context.Background()

	uploadID := uuid.NewString()
	now := time.Now().UTC()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.filing_uploads
			(id, court_id, case_id, purpose, storage_key, filename, content_type, file_size,
			 initiated_by, finalized, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		uploadID, courtID, caseID, purpose, "uploads/"+uploadID, "exhibit.pdf", "application/pdf", int64(2048),
		initiatedBy, false, now.Add(30*time.Minute), now)
	require.NoError(t, err, "failed to create test filing upload")

	return uploadID
}

// CleanupFilingUpload removes a staged upload.
func CleanupFilingUpload(t *testing.T, pool *pgxpool.Pool, uploadID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.filing_uploads WHERE id = $1", uploadID)
}

// CreateTestFiling inserts a pending filing and returns its ID.
func CreateTestFiling(t *testing.T, pool *pgxpool.Pool, courtID, caseID string, filingType entity.FilingType, filedBy string) string {
	t.Helper()
	ctx := context.Background()

	filingID := uuid.NewString()
	now := time.Now().UTC()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.filings (id, court_id, case_id, filing_type, filed_by, filed_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		filingID, courtID, caseID, filingType, filedBy, now, entity.FilingStatusPending, now)
	require.NoError(t, err, "failed to create test filing")

	return filingID
}

// CleanupFiling removes a test filing.
func CleanupFiling(t *testing.T, pool *pgxpool.Pool, filingID string) {
	t.Helper()
	ctx := context.Background()
	_, _ = pool.Exec(ctx, "DELETE FROM docket.filings WHERE id = $1", filingID)
}

// CreateTestServiceRecord inserts a service record and returns its ID.
func CreateTestServiceRecord(t *testing.T, pool *pgxpool.Pool, courtID, caseID, documentID, partyID string, method entity.ServiceMethod) string {
	t.Helper()
	ctx := context.Background()

	recordID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.service_records
			(id, court_id, case_id, document_id, party_id, service_method, successful, proof_of_service_filed, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		recordID, courtID, caseID, documentID, partyID, method, false, false, 0, time.Now().UTC())
	require.NoError(t, err, "failed to create test service record")

	return recordID
}

// CreateTestNef inserts a notice of electronic filing and returns its ID.
func CreateTestNef(t *testing.T, pool *pgxpool.Pool, courtID, caseID, filingID, entryID string) string {
	t.Helper()
	ctx := context.Background()

	nefID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.nefs
			(id, court_id, case_id, filing_id, docket_entry_id, status, recipient_snapshot, html_snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		nefID, courtID, caseID, filingID, entryID, "PENDING", "[]", "", time.Now().UTC())
	require.NoError(t, err, "failed to create test nef")

	return nefID
}

// CreateTestDocumentEvent appends an audit event against a document and
// returns its ID.
func CreateTestDocumentEvent(t *testing.T, pool *pgxpool.Pool, courtID, caseID, documentID, eventType, actor string) string {
	t.Helper()
	ctx := context.Background()

	eventID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO docket.document_events (id, court_id, case_id, document_id, event_type, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		eventID, courtID, caseID, documentID, eventType, actor, time.Now().UTC())
	require.NoError(t, err, "failed to create test document event")

	return eventID
}
