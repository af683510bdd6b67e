package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// ServiceRecordToResponse converts a ServiceRecord entity to a response DTO.
func ServiceRecordToResponse(r *entity.ServiceRecord) *dto.ServiceRecordResponse {
	return &dto.ServiceRecordResponse{
		ID:                  r.ID,
		CourtID:             r.CourtID,
		CaseID:              r.CaseID,
		DocumentID:          r.DocumentID,
		PartyID:             r.PartyID,
		ServiceMethod:       string(r.Method),
		ServedBy:            r.ServedBy,
		Successful:          r.Successful,
		ProofOfServiceFiled: r.ProofOfServiceFiled,
		Attempts:            r.Attempts,
		CertificateText:     r.CertificateText,
		CreatedAt:           r.CreatedAt,
	}
}

// ServiceRecordsToResponses converts a slice of ServiceRecord entities.
func ServiceRecordsToResponses(records []*entity.ServiceRecord) []*dto.ServiceRecordResponse {
	out := make([]*dto.ServiceRecordResponse, len(records))
	for i, r := range records {
		out[i] = ServiceRecordToResponse(r)
	}
	return out
}

// CreateServiceRecordRequestToCommand converts a create request to a usecase command.
func CreateServiceRecordRequestToCommand(courtID, caseID string, req dto.CreateServiceRecordRequest) usecase.CreateServiceRecordCommand {
	return usecase.CreateServiceRecordCommand{
		CourtID:    courtID,
		CaseID:     caseID,
		DocumentID: req.DocumentID,
		PartyID:    req.PartyID,
		Method:     entity.ServiceMethod(req.Method),
	}
}

// CompleteServiceRecordRequestToCommand converts a complete request to a usecase command.
func CompleteServiceRecordRequestToCommand(courtID, caseID, recordID string, req dto.CompleteServiceRecordRequest) usecase.CompleteServiceRecordCommand {
	return usecase.CompleteServiceRecordCommand{
		CourtID:         courtID,
		CaseID:          caseID,
		ServiceRecordID: recordID,
		ServedBy:        req.ServedBy,
		CertificateText: req.CertificateText,
	}
}

// NefToResponse converts a Nef entity to a response DTO.
func NefToResponse(n *entity.Nef) *dto.NefResponse {
	recipients := make([]dto.NefRecipientResponse, len(n.RecipientSnapshot))
	for i, r := range n.RecipientSnapshot {
		var channel *string
		if r.Channel != nil {
			c := string(*r.Channel)
			channel = &c
		}
		recipients[i] = dto.NefRecipientResponse{
			PartyID:     r.PartyID,
			AttorneyID:  r.AttorneyID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			NefSMSOptIn: r.NefSMSOptIn,
			Channel:     channel,
			Delivered:   r.Delivered,
		}
	}
	return &dto.NefResponse{
		ID:                n.ID,
		CourtID:           n.CourtID,
		CaseID:            n.CaseID,
		FilingID:          n.FilingID,
		DocketEntryID:     n.DocketEntryID,
		Status:            string(n.Status),
		RecipientSnapshot: recipients,
		CreatedAt:         n.CreatedAt,
		DeliveredAt:       n.DeliveredAt,
	}
}
