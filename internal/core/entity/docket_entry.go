package entity

import "time"

// DocketEntry is a single numbered line on a case's docket sheet. EntryNumber
// is assigned sequentially per case by the Docket Entry Engine under an
// advisory lock and is never reused, even if the entry is later struck.
type DocketEntry struct {
	ID                  string     `json:"id"`
	CourtID             string     `json:"courtId"`
	CaseID              string     `json:"caseId"`
	EntryNumber         int        `json:"entryNumber"`
	EntryType           EntryType  `json:"entryType"`
	Description         string     `json:"description"`
	DocumentID          *string    `json:"documentId,omitempty"`
	EnteredBy           string     `json:"enteredBy"`
	EntryDate           time.Time  `json:"entryDate"`
	IsSealed            bool       `json:"isSealed"`
	IsExParte           bool       `json:"isExParte"`
	SealingLevel        SealingLevel `json:"sealingLevel"`
	RelatedEntryNumbers []int      `json:"relatedEntryNumbers,omitempty"`
	ServiceListPartyIDs []string   `json:"serviceListPartyIds,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// NewDocketEntry builds an entry with the next sequence number already
// resolved by the caller (the repository assigns it under the per-case
// advisory lock; this constructor does not touch numbering).
func NewDocketEntry(courtID, caseID string, entryNumber int, entryType EntryType, description, enteredBy string) *DocketEntry {
	return &DocketEntry{
		CourtID:      courtID,
		CaseID:       caseID,
		EntryNumber:  entryNumber,
		EntryType:    entryType,
		Description:  description,
		EnteredBy:    enteredBy,
		EntryDate:    time.Now().UTC(),
		SealingLevel: SealingLevelPublic,
		CreatedAt:    time.Now().UTC(),
	}
}

// LinkDocument records the document this entry concerns. Both must already
// be known to belong to the same (court, case); the caller enforces that.
func (e *DocketEntry) LinkDocument(documentID string) {
	e.DocumentID = &documentID
}

// Validate checks structural invariants independent of persistence.
func (e *DocketEntry) Validate() error {
	if e.CourtID == "" || e.CaseID == "" || e.EnteredBy == "" {
		return ErrRequiredField
	}
	if !e.EntryType.IsValid() {
		return ErrInvalidEntryType
	}
	if e.Description == "" {
		return ErrRequiredField
	}
	if len(e.Description) > 4000 {
		return ErrFieldTooLong
	}
	if !e.SealingLevel.IsValid() {
		return ErrInvalidSealingLevel
	}
	return nil
}

// VisibleTo reports whether a requester holding role may see this entry on
// the docket sheet, following the same sealing matrix as Document.VisibleTo.
func (e *DocketEntry) VisibleTo(role Role) bool {
	if !e.SealingLevel.IsSealed() {
		return true
	}
	switch e.SealingLevel {
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

// DocketStatistics is a read-only aggregate over a case's entries, split by
// entry type and by sealed/unsealed.
type DocketStatistics struct {
	CaseID        string            `json:"caseId"`
	TotalEntries  int               `json:"totalEntries"`
	SealedEntries int               `json:"sealedEntries"`
	ByEntryType   map[EntryType]int `json:"byEntryType"`
}

// DocketSheet is the denormalized per-case projection returned by the
// Timeline Reader's docket-sheet endpoint: case header, ordered entries, and
// the active party list.
type DocketSheet struct {
	Case    *Case          `json:"case"`
	Entries []*DocketEntry `json:"entries"`
	Parties []*Party       `json:"parties"`
}
