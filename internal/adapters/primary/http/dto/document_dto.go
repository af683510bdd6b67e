package dto

import "time"

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID                   string    `json:"id"`
	CourtID              string    `json:"courtId"`
	CaseID               string    `json:"caseId"`
	Title                string    `json:"title"`
	DocumentType         string    `json:"documentType"`
	Checksum             string    `json:"checksum"`
	FileSize             int64     `json:"fileSize"`
	ContentType          string    `json:"contentType"`
	IsSealed             bool      `json:"isSealed"`
	SealingLevel         string    `json:"sealingLevel"`
	SealReasonCode       *string   `json:"sealReasonCode,omitempty"`
	SealMotionID         *string   `json:"sealMotionId,omitempty"`
	UploadedBy           string    `json:"uploadedBy"`
	SourceAttachmentID   *string   `json:"sourceAttachmentId,omitempty"`
	ReplacedByDocumentID *string   `json:"replacedByDocumentId,omitempty"`
	IsStricken           bool      `json:"isStricken"`
	DownloadURL          string    `json:"downloadUrl,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// SealDocumentRequest is the request body for applying a sealing level.
type SealDocumentRequest struct {
	Level      string  `json:"level" binding:"required,oneof=SEALED_COURT_ONLY SEALED_CASE_PARTICIPANTS SEALED_ATTORNEYS_ONLY"`
	ReasonCode string  `json:"reasonCode" binding:"required"`
	MotionID   *string `json:"motionId,omitempty"`
}

// ReplaceDocumentRequest is the request body for superseding a document.
type ReplaceDocumentRequest struct {
	UploadID string `json:"uploadId" binding:"required,uuid"`
	Title    string `json:"title" binding:"required,max=500"`
}

// PromoteAttachmentRequest is the request body for promoting an attachment
// into a formal document.
type PromoteAttachmentRequest struct {
	AttachmentID string `json:"attachmentId" binding:"required,uuid"`
	DocumentType string `json:"documentType" binding:"required"`
	Title        string `json:"title" binding:"required,max=500"`
}

// DocumentListRequest is the query-string shape for listing documents.
type DocumentListRequest struct {
	Page          int    `form:"page,default=1"`
	PerPage       int    `form:"perPage,default=25"`
	DocumentType  string `form:"documentType"`
	Sealed        *bool  `form:"sealed"`
	IncludeStruck bool   `form:"includeStruck"`
	Search        string `form:"q"`
}

// PaginatedDocumentResponse is a page of documents.
type PaginatedDocumentResponse struct {
	Data       []*DocumentResponse `json:"data"`
	Pagination PaginationMeta      `json:"pagination"`
}

// DocumentEventResponse represents an audit log entry for a document.
type DocumentEventResponse struct {
	ID         string            `json:"id"`
	DocumentID string            `json:"documentId"`
	EventType  string            `json:"eventType"`
	Actor      string            `json:"actor"`
	Detail     map[string]string `json:"detail,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}
