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

// EventController handles the Event Façade's single dispatch endpoint.
type EventController struct {
	eventUC usecase.EventUseCase
}

// NewEventController creates a new event controller.
func NewEventController(eventUC usecase.EventUseCase) *EventController {
	return &EventController{eventUC: eventUC}
}

// RegisterRoutes registers the /events route under rg. The route itself only
// requires an Attorney-or-better principal to reach the façade; the minimum
// role per event Kind is enforced by the façade's dispatcher (§4.9), since
// text_entry and promote_attachment require Clerk/Judge.
func (c *EventController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	rg.POST("/events", middleware.RoleGate(resolver, entity.RoleAttorney), c.Dispatch)
}

// Dispatch routes an event envelope by Kind to the Docket Entry Engine,
// Filing Submission Pipeline, or Document promotion flow.
func (c *EventController) Dispatch(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	role, _ := middleware.GetRole(ctx)
	userID, _ := middleware.GetUserID(ctx)

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	result, err := c.eventUC.Dispatch(ctx.Request.Context(), court.ID, role, userID, mapper.EventRequestToEnvelope(req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.EventResultToResponse(result))
}
