package entity

import "time"

// UploadPurpose distinguishes what a staged upload will become once
// finalized: a case Filing's lead document, or a DocketAttachment hung off
// an existing entry.
type UploadPurpose string

const (
	UploadPurposeFiling     UploadPurpose = "FILING"
	UploadPurposeAttachment UploadPurpose = "ATTACHMENT"
)

// FilingUpload is a staged object awaiting finalization. The Upload Stager
// issues a presigned PUT URL against StorageKey, and the client must finalize
// (confirming the object landed and recording its ETag as the checksum) before the key can
// be referenced from a Filing or promoted into a DocketAttachment.
type FilingUpload struct {
	ID          string        `json:"id"`
	CourtID     string        `json:"courtId"`
	CaseID      string        `json:"caseId"`
	Purpose     UploadPurpose `json:"purpose"`
	StorageKey  string        `json:"storageKey"`
	Filename    string        `json:"filename"`
	ContentType string        `json:"contentType"`
	FileSize    int64         `json:"fileSize"`
	Checksum    string        `json:"checksum"`
	InitiatedBy string        `json:"initiatedBy"`
	Finalized   bool          `json:"finalized"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	FinalizedAt *time.Time    `json:"finalizedAt,omitempty"`
}

const uploadStagingWindow = 30 * time.Minute

// NewFilingUpload stages a new upload slot with the default staging window.
func NewFilingUpload(courtID, caseID string, purpose UploadPurpose, storageKey, filename, contentType string, fileSize int64, initiatedBy string) *FilingUpload {
	now := time.Now().UTC()
	return &FilingUpload{
		CourtID:     courtID,
		CaseID:      caseID,
		Purpose:     purpose,
		StorageKey:  storageKey,
		Filename:    filename,
		ContentType: contentType,
		FileSize:    fileSize,
		InitiatedBy: initiatedBy,
		ExpiresAt:   now.Add(uploadStagingWindow),
		CreatedAt:   now,
	}
}

// IsExpired reports whether the staging window has elapsed without
// finalization.
func (u *FilingUpload) IsExpired() bool {
	return !u.Finalized && time.Now().UTC().After(u.ExpiresAt)
}

// Finalize records the actual stored checksum once the client confirms the
// object landed in the bucket.
func (u *FilingUpload) Finalize(checksum string) error {
	if u.Finalized {
		return ErrUploadAlreadyFinal
	}
	if u.IsExpired() {
		return ErrUploadExpired
	}
	u.Checksum = checksum
	u.Finalized = true
	now := time.Now().UTC()
	u.FinalizedAt = &now
	return nil
}
