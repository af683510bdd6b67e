package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// PartyToResponse converts a Party entity to a response DTO.
func PartyToResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:            p.ID,
		CourtID:       p.CourtID,
		CaseID:        p.CaseID,
		Name:          p.Name,
		PartyType:     string(p.PartyType),
		PartyRole:     string(p.PartyRole),
		Status:        string(p.Status),
		ServiceMethod: string(p.ServiceMethod),
		Email:         p.Email,
		Phone:         p.Phone,
		NefSMSOptIn:   p.NefSMSOptIn,
		CreatedAt:     p.CreatedAt,
	}
}

// PartiesToResponses converts a slice of Party entities.
func PartiesToResponses(parties []*entity.Party) []*dto.PartyResponse {
	out := make([]*dto.PartyResponse, len(parties))
	for i, p := range parties {
		out[i] = PartyToResponse(p)
	}
	return out
}

// AddPartyRequestToCommand converts an add-party request to a usecase command.
func AddPartyRequestToCommand(courtID, caseID string, req dto.AddPartyRequest) usecase.AddPartyCommand {
	return usecase.AddPartyCommand{
		CourtID:     courtID,
		CaseID:      caseID,
		Name:        req.Name,
		PartyType:   entity.PartyType(req.PartyType),
		PartyRole:   entity.PartyRole(req.PartyRole),
		Email:       req.Email,
		Phone:       req.Phone,
		NefSMSOptIn: req.NefSMSOptIn,
	}
}

// RepresentationToResponse converts a Representation entity to a response DTO.
func RepresentationToResponse(r *entity.Representation) *dto.RepresentationResponse {
	return &dto.RepresentationResponse{
		ID:          r.ID,
		CourtID:     r.CourtID,
		CaseID:      r.CaseID,
		PartyID:     r.PartyID,
		AttorneyID:  r.AttorneyID,
		AttorneyBar: r.AttorneyBar,
		LeadCounsel: r.LeadCounsel,
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
	}
}

// AddRepresentationRequestToCommand converts a request to a usecase command.
func AddRepresentationRequestToCommand(courtID, caseID string, req dto.AddRepresentationRequest) usecase.AddRepresentationCommand {
	return usecase.AddRepresentationCommand{
		CourtID:     courtID,
		CaseID:      caseID,
		PartyID:     req.PartyID,
		AttorneyID:  req.AttorneyID,
		AttorneyBar: req.AttorneyBar,
		LeadCounsel: req.LeadCounsel,
	}
}
