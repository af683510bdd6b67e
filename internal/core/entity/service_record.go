package entity

import "time"

// ServiceRecord documents that a particular party was (or is owed) service
// of a document. Records are auto-seeded for every active party when a
// filing commits, and can also be bulk-created for out-of-band service
// (e.g. mailed notice to a pro se party).
type ServiceRecord struct {
	ID                   string        `json:"id"`
	CourtID              string        `json:"courtId"`
	CaseID               string        `json:"caseId"`
	DocumentID           string        `json:"documentId"`
	PartyID              string        `json:"partyId"`
	Method               ServiceMethod `json:"serviceMethod"`
	ServedBy             string        `json:"servedBy"`
	Successful           bool          `json:"successful"`
	ProofOfServiceFiled  bool          `json:"proofOfServiceFiled"`
	Attempts             int           `json:"attempts"`
	CertificateText      *string       `json:"certificateText,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// NewServiceRecord seeds a pending service obligation against a document.
func NewServiceRecord(courtID, caseID, documentID, partyID string, method ServiceMethod) *ServiceRecord {
	return &ServiceRecord{
		CourtID:    courtID,
		CaseID:     caseID,
		DocumentID: documentID,
		PartyID:    partyID,
		Method:     method,
		CreatedAt:  time.Now().UTC(),
	}
}

// Complete records a successful service attempt, optionally with a
// certificate of service.
func (s *ServiceRecord) Complete(servedBy string, certificate *string) {
	s.Attempts++
	s.ServedBy = servedBy
	s.Successful = true
	if certificate != nil {
		s.ProofOfServiceFiled = true
		s.CertificateText = certificate
	}
}

// RecordFailedAttempt increments the attempt counter without marking service
// successful, e.g. a bounced NEF email.
func (s *ServiceRecord) RecordFailedAttempt() {
	s.Attempts++
}

// Nef is a Notice of Electronic Filing: the system-generated notification
// fanned out to a filing's ServiceRecord recipients over email/SMS.
type Nef struct {
	ID                string         `json:"id"`
	CourtID           string         `json:"courtId"`
	CaseID            string         `json:"caseId"`
	FilingID          string         `json:"filingId"`
	DocketEntryID     string         `json:"docketEntryId"`
	Status            NefStatus      `json:"status"`
	RecipientSnapshot []NefRecipient `json:"recipientSnapshot"`
	HTMLSnapshot      string         `json:"htmlSnapshot"`
	CreatedAt         time.Time      `json:"createdAt"`
	DeliveredAt       *time.Time     `json:"deliveredAt,omitempty"`
}

// NefRecipient freezes a party or attorney's contact details at the moment
// the NEF was generated, so later changes to the underlying record don't
// alter history.
type NefRecipient struct {
	PartyID     *string             `json:"partyId,omitempty"`
	AttorneyID  *string             `json:"attorneyId,omitempty"`
	Name        string              `json:"name"`
	Email       *string             `json:"email,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	NefSMSOptIn bool                `json:"nefSmsOptIn"`
	Channel     *NefDeliveryChannel `json:"channel,omitempty"`
	Delivered   bool                `json:"delivered"`
}

// NewNef creates a pending NEF with a frozen recipient snapshot.
func NewNef(courtID, caseID, filingID, docketEntryID, htmlSnapshot string, recipients []NefRecipient) *Nef {
	return &Nef{
		CourtID:           courtID,
		CaseID:            caseID,
		FilingID:          filingID,
		DocketEntryID:     docketEntryID,
		Status:            NefStatusPending,
		RecipientSnapshot: recipients,
		HTMLSnapshot:      htmlSnapshot,
		CreatedAt:         time.Now().UTC(),
	}
}

// MarkDelivered transitions the NEF once at least one recipient was reached.
func (n *Nef) MarkDelivered() {
	n.Status = NefStatusDelivered
	now := time.Now().UTC()
	n.DeliveredAt = &now
}

// MarkFailed transitions the NEF when no recipient could be reached.
func (n *Nef) MarkFailed() {
	n.Status = NefStatusFailed
}
