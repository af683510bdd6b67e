package entity

import "time"

// Document is a stored piece of the case record (metadata only; the blob
// lives in object storage at StorageKey). Sealing is tracked both as the
// boolean IsSealed (legacy/fast-path check) and the granular SealingLevel
// that the visibility matrix actually evaluates.
type Document struct {
	ID                   string       `json:"id"`
	CourtID              string       `json:"courtId"`
	CaseID               string       `json:"caseId"`
	Title                string       `json:"title"`
	DocumentType         DocumentType `json:"documentType"`
	StorageKey           string       `json:"storageKey"`
	Checksum             string       `json:"checksum"`
	FileSize             int64        `json:"fileSize"`
	ContentType          string       `json:"contentType"`
	IsSealed             bool         `json:"isSealed"`
	SealingLevel         SealingLevel `json:"sealingLevel"`
	SealReasonCode       *string      `json:"sealReasonCode,omitempty"`
	SealMotionID         *string      `json:"sealMotionId,omitempty"`
	UploadedBy           string       `json:"uploadedBy"`
	SourceAttachmentID   *string      `json:"sourceAttachmentId,omitempty"`
	ReplacedByDocumentID *string      `json:"replacedByDocumentId,omitempty"`
	IsStricken           bool         `json:"isStricken"`
	CreatedAt            time.Time    `json:"createdAt"`
}

// NewDocument creates a public, unsealed document record.
func NewDocument(courtID, caseID, title string, docType DocumentType, storageKey, checksum, contentType string, fileSize int64, uploadedBy string) *Document {
	return &Document{
		CourtID:      courtID,
		CaseID:       caseID,
		Title:        title,
		DocumentType: docType,
		StorageKey:   storageKey,
		Checksum:     checksum,
		FileSize:     fileSize,
		ContentType:  contentType,
		SealingLevel: SealingLevelPublic,
		UploadedBy:   uploadedBy,
		CreatedAt:    time.Now().UTC(),
	}
}

// Seal applies a sealing level and reason, keyed on an authorizing motion.
func (d *Document) Seal(level SealingLevel, reasonCode string, motionID *string) error {
	if !level.IsValid() {
		return ErrInvalidSealingLevel
	}
	if d.IsSealed && d.SealingLevel == level {
		return ErrDocumentAlreadySealed
	}
	d.IsSealed = level.IsSealed()
	d.SealingLevel = level
	if reasonCode != "" {
		d.SealReasonCode = &reasonCode
	}
	d.SealMotionID = motionID
	return nil
}

// Unseal returns the document to public visibility.
func (d *Document) Unseal() error {
	if !d.IsSealed {
		return ErrDocumentNotSealed
	}
	d.IsSealed = false
	d.SealingLevel = SealingLevelPublic
	d.SealReasonCode = nil
	d.SealMotionID = nil
	return nil
}

// MarkReplacedBy records that this document has been superseded and can no
// longer itself be replaced again (the chain only moves forward).
func (d *Document) MarkReplacedBy(replacementID string) error {
	if d.ReplacedByDocumentID != nil {
		return ErrDocumentAlreadyReplacedOther
	}
	d.ReplacedByDocumentID = &replacementID
	return nil
}

// Strike marks the document as stricken from the record. A stricken document
// remains stored for audit purposes but is excluded from ordinary reads.
func (d *Document) Strike() error {
	if d.IsStricken {
		return ErrDocumentAlreadyStruck
	}
	d.IsStricken = true
	return nil
}

// VisibleTo reports whether a requester holding role may view a document at
// this sealing level. Unsealed documents are visible to everyone with case
// access; sealed documents follow the matrix described on SealingLevel.
func (d *Document) VisibleTo(role Role) bool {
	if !d.SealingLevel.IsSealed() {
		return true
	}
	switch d.SealingLevel {
	case SealingLevelSealedCourtOnly:
		return role == RoleClerk || role == RoleJudge || role == RoleAdmin
	case SealingLevelSealedCaseParticipants:
		return role == RoleClerk || role == RoleJudge || role == RoleAdmin || role == RoleAttorney
	case SealingLevelSealedAttorneysOnly:
		return role == RoleAttorney || role == RoleAdmin
	default:
		return false
	}
}

// DocketAttachment is a staged file linked to a DocketEntry (e.g. exhibits
// attached to a minute entry) that has not been promoted into the case's
// formal Document record.
type DocketAttachment struct {
	ID            string    `json:"id"`
	CourtID       string    `json:"courtId"`
	CaseID        string    `json:"caseId"`
	DocketEntryID string    `json:"docketEntryId"`
	Filename      string    `json:"filename"`
	StorageKey    string    `json:"storageKey"`
	ContentType   string    `json:"contentType"`
	FileSize      int64     `json:"fileSize"`
	Checksum      string    `json:"checksum"`
	PromotedToID  *string   `json:"promotedToDocumentId,omitempty"`
	UploadedBy    string    `json:"uploadedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsPromoted reports whether this attachment has already become a Document.
func (a *DocketAttachment) IsPromoted() bool {
	return a.PromotedToID != nil
}

// MarkPromoted links the attachment to the document it was promoted into.
func (a *DocketAttachment) MarkPromoted(documentID string) error {
	if a.IsPromoted() {
		return ErrAttachmentAlreadyPromoted
	}
	a.PromotedToID = &documentID
	return nil
}
