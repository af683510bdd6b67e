package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// CourtToResponse converts a Court entity to a response DTO.
func CourtToResponse(c *entity.Court) *dto.CourtResponse {
	return &dto.CourtResponse{
		ID:        c.ID,
		CourtName: c.CourtName,
		CourtCode: c.CourtCode,
		CreatedAt: c.CreatedAt,
	}
}

// CourtsToResponses converts a slice of Court entities.
func CourtsToResponses(courts []*entity.Court) []*dto.CourtResponse {
	out := make([]*dto.CourtResponse, len(courts))
	for i, c := range courts {
		out[i] = CourtToResponse(c)
	}
	return out
}
