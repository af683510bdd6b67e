package dto

import "time"

// InitUploadRequest is the request body for staging a new upload slot.
type InitUploadRequest struct {
	Purpose     string `json:"purpose" binding:"required,oneof=FILING ATTACHMENT"`
	Filename    string `json:"filename" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required,gt=0"`
}

// InitUploadResponse carries the staged upload slot and the presigned PUT
// URL the client writes the object body to directly.
type InitUploadResponse struct {
	UploadID  string    `json:"uploadId"`
	PutURL    string    `json:"putUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadResponse represents a staged upload in API responses.
type UploadResponse struct {
	ID          string     `json:"id"`
	CourtID     string     `json:"courtId"`
	CaseID      string     `json:"caseId"`
	Purpose     string     `json:"purpose"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"contentType"`
	FileSize    int64      `json:"fileSize"`
	Checksum    string     `json:"checksum"`
	Finalized   bool       `json:"finalized"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	FinalizedAt *time.Time `json:"finalizedAt,omitempty"`
}
