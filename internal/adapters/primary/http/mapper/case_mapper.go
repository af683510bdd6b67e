package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// CaseToResponse converts a Case entity to a response DTO.
func CaseToResponse(c *entity.Case) *dto.CaseResponse {
	return &dto.CaseResponse{
		ID:            c.ID,
		CourtID:       c.CourtID,
		CaseNumber:    c.CaseNumber,
		Title:         c.Title,
		CaseType:      string(c.CaseType),
		Status:        string(c.Status),
		AssignedJudge: c.AssignedJudge,
		FiledAt:       c.FiledAt,
		ClosedAt:      c.ClosedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CasesToResponses converts a slice of Case entities to response DTOs.
func CasesToResponses(cases []*entity.Case) []*dto.CaseResponse {
	out := make([]*dto.CaseResponse, len(cases))
	for i, c := range cases {
		out[i] = CaseToResponse(c)
	}
	return out
}

// CreateCaseRequestToCommand converts a create request to a usecase command.
func CreateCaseRequestToCommand(courtID string, req dto.CreateCaseRequest) usecase.CreateCaseCommand {
	return usecase.CreateCaseCommand{
		CourtID:    courtID,
		CaseNumber: req.CaseNumber,
		Title:      req.Title,
		CaseType:   entity.CaseType(req.CaseType),
	}
}

// TransitionCaseRequestToCommand converts a transition request to a usecase command.
func TransitionCaseRequestToCommand(courtID, caseID string, req dto.TransitionCaseRequest) usecase.TransitionCaseCommand {
	return usecase.TransitionCaseCommand{
		CourtID: courtID,
		CaseID:  caseID,
		Target:  entity.CaseStatus(req.Target),
	}
}

// CaseListRequestToFilters converts a list request to port filters.
func CaseListRequestToFilters(req dto.CaseListRequest) port.CaseFilters {
	offset := (req.Page - 1) * req.PerPage
	filters := port.CaseFilters{
		Search: req.Search,
		Limit:  req.PerPage,
		Offset: offset,
	}
	if req.Status != "" {
		status := entity.CaseStatus(req.Status)
		filters.Status = &status
	}
	if req.Type != "" {
		caseType := entity.CaseType(req.Type)
		filters.Type = &caseType
	}
	return filters
}

// CasesToPaginatedResponse converts cases to a paginated response.
func CasesToPaginatedResponse(cases []*entity.Case, total int64, page, perPage int) *dto.PaginatedCaseResponse {
	return &dto.PaginatedCaseResponse{
		Data:       CasesToResponses(cases),
		Pagination: dto.NewPaginationMeta(total, page, perPage),
	}
}
