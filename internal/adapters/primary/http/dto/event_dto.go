package dto

// EventRequest is the single wire shape POSTed to the events endpoint; only
// the fields relevant to Kind are read by the façade.
type EventRequest struct {
	Kind         string  `json:"kind" binding:"required,oneof=text_entry filing promote_attachment"`
	CaseID       string  `json:"caseId" binding:"required,uuid"`
	EntryType    string  `json:"entryType,omitempty"`
	Description  string  `json:"description,omitempty"`
	DocumentType string  `json:"documentType,omitempty"`
	Title        string  `json:"title,omitempty"`
	UploadID     *string `json:"uploadId,omitempty"`
	AttachmentID string  `json:"attachmentId,omitempty"`
}

// EventResponse is the union of what an event dispatch can produce; only
// the fields relevant to the dispatched kind are populated.
type EventResponse struct {
	DocketEntry *DocketEntryResponse `json:"docketEntry,omitempty"`
	Document    *DocumentResponse    `json:"document,omitempty"`
	Filing      *FilingResponse      `json:"filing,omitempty"`
	Nef         *NefResponse         `json:"nef,omitempty"`
}
