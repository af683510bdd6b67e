package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/mapper"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// PartyController handles party and representation HTTP requests.
type PartyController struct {
	partyUC usecase.PartyUseCase
}

// NewPartyController creates a new party controller.
func NewPartyController(partyUC usecase.PartyUseCase) *PartyController {
	return &PartyController{partyUC: partyUC}
}

// RegisterRoutes registers all /cases/:caseId/parties and
// /cases/:caseId/representations routes under rg.
func (c *PartyController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	parties := rg.Group("/cases/:caseId/parties")
	{
		parties.GET("", middleware.RoleGate(resolver, entity.RolePublic), c.ListByCase)
		parties.POST("", middleware.RoleGate(resolver, entity.RoleClerk), c.AddParty)
	}

	representations := rg.Group("/cases/:caseId/representations")
	{
		representations.POST("", middleware.RoleGate(resolver, entity.RoleAttorney), c.AddRepresentation)
		representations.DELETE("/:representationId", middleware.RoleGate(resolver, entity.RoleAttorney), c.WithdrawRepresentation)
	}
}

// AddParty attaches a new party to a case.
func (c *PartyController) AddParty(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.AddPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	party, err := c.partyUC.AddParty(ctx.Request.Context(), mapper.AddPartyRequestToCommand(court.ID, ctx.Param("caseId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.PartyToResponse(party))
}

// ListByCase lists every party in a case.
func (c *PartyController) ListByCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	parties, err := c.partyUC.ListByCase(ctx.Request.Context(), court.ID, ctx.Param("caseId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.PartiesToResponses(parties))
}

// AddRepresentation records an attorney's appearance for a party.
func (c *PartyController) AddRepresentation(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.AddRepresentationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	rep, err := c.partyUC.AddRepresentation(ctx.Request.Context(), mapper.AddRepresentationRequestToCommand(court.ID, ctx.Param("caseId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.RepresentationToResponse(rep))
}

// WithdrawRepresentation ends an attorney's representation.
func (c *PartyController) WithdrawRepresentation(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	if err := c.partyUC.WithdrawRepresentation(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("representationId")); err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
