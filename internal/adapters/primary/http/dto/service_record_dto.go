package dto

import "time"

// ServiceRecordResponse represents a service-of-process record in API
// responses.
type ServiceRecordResponse struct {
	ID                  string    `json:"id"`
	CourtID             string    `json:"courtId"`
	CaseID              string    `json:"caseId"`
	DocumentID          string    `json:"documentId"`
	PartyID             string    `json:"partyId"`
	ServiceMethod       string    `json:"serviceMethod"`
	ServedBy            string    `json:"servedBy"`
	Successful          bool      `json:"successful"`
	ProofOfServiceFiled bool      `json:"proofOfServiceFiled"`
	Attempts            int       `json:"attempts"`
	CertificateText     *string   `json:"certificateText,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateServiceRecordRequest is the request body for a single service
// obligation.
type CreateServiceRecordRequest struct {
	DocumentID string `json:"documentId" binding:"required,uuid"`
	PartyID    string `json:"partyId" binding:"required,uuid"`
	Method     string `json:"serviceMethod" binding:"required,oneof=NEF MAIL HAND_DELIVERY"`
}

// BulkCreateServiceRecordRequest is the request body for seeding service
// records for every active party against a document.
type BulkCreateServiceRecordRequest struct {
	DocumentID string `json:"documentId" binding:"required,uuid"`
}

// CompleteServiceRecordRequest is the request body for marking service
// accomplished.
type CompleteServiceRecordRequest struct {
	ServedBy        string  `json:"servedBy" binding:"required"`
	CertificateText *string `json:"certificateText,omitempty"`
}

// NefResponse represents a Notice of Electronic Filing in API responses.
type NefResponse struct {
	ID                string               `json:"id"`
	CourtID           string               `json:"courtId"`
	CaseID            string               `json:"caseId"`
	FilingID          string               `json:"filingId"`
	DocketEntryID     string               `json:"docketEntryId"`
	Status            string               `json:"status"`
	RecipientSnapshot []NefRecipientResponse `json:"recipientSnapshot"`
	CreatedAt         time.Time            `json:"createdAt"`
	DeliveredAt       *time.Time           `json:"deliveredAt,omitempty"`
}

// NefRecipientResponse freezes a single recipient's contact details at the
// moment a NEF was generated.
type NefRecipientResponse struct {
	PartyID     *string `json:"partyId,omitempty"`
	AttorneyID  *string `json:"attorneyId,omitempty"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	NefSMSOptIn bool    `json:"nefSmsOptIn"`
	Channel     *string `json:"channel,omitempty"`
	Delivered   bool    `json:"delivered"`
}
