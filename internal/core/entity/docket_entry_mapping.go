package entity

// entryTypeByDocumentType is the closed mapping from a filed document's type
// to the DocketEntry type it produces once accepted. Every DocumentType must
// have an entry here; EntryTypeForDocumentType returns ErrInvalidDocumentType
// for a value missing from this table.
var entryTypeByDocumentType = map[DocumentType]EntryType{
	DocumentTypeComplaint:     EntryTypeFiling,
	DocumentTypeAnswer:        EntryTypeFiling,
	DocumentTypeMotion:        EntryTypeFiling,
	DocumentTypeBrief:         EntryTypeFiling,
	DocumentTypeStipulation:   EntryTypeFiling,
	DocumentTypeSubpoena:      EntryTypeFiling,
	DocumentTypeExhibit:       EntryTypeMinuteEntry,
	DocumentTypeTranscript:    EntryTypeMinuteEntry,
	DocumentTypeOrder:         EntryTypeOrder,
	DocumentTypeJudgment:      EntryTypeOrder,
	DocumentTypeProposedOrder: EntryTypeFiling,
	DocumentTypeNotice:        EntryTypeNotice,
}

// EntryTypeForDocumentType resolves the DocketEntry type a document of this
// type produces when it is accepted onto the docket.
func EntryTypeForDocumentType(dt DocumentType) (EntryType, error) {
	et, ok := entryTypeByDocumentType[dt]
	if !ok {
		return "", ErrInvalidDocumentType
	}
	return et, nil
}

// filingTypeByDocumentType is the closed mapping from a Filing's lead
// document type to the FilingType the submission pipeline records. A
// document type with no entry cannot be filed directly (e.g. it only ever
// arrives as a DocketAttachment promoted later).
var filingTypeByDocumentType = map[DocumentType]FilingType{
	DocumentTypeComplaint:     FilingTypeInitial,
	DocumentTypeAnswer:        FilingTypeResponsive,
	DocumentTypeMotion:        FilingTypeMotion,
	DocumentTypeBrief:         FilingTypeBrief,
	DocumentTypeStipulation:   FilingTypeJointFiling,
	DocumentTypeSubpoena:      FilingTypeDiscovery,
	DocumentTypeProposedOrder: FilingTypeProposedOrder,
}

// FilingTypeForDocumentType resolves the FilingType a Filing must be tagged
// with given its lead document's type. Document types that are never the
// lead document of a Filing (exhibits, transcripts, orders, notices) return
// ErrDocumentTypeFilingUnmap.
func FilingTypeForDocumentType(dt DocumentType) (FilingType, error) {
	ft, ok := filingTypeByDocumentType[dt]
	if !ok {
		return "", ErrDocumentTypeFilingUnmap
	}
	return ft, nil
}
