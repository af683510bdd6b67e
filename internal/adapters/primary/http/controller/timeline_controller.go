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

// TimelineController handles the Timeline Reader's merged case-history and
// docket sheet projections.
type TimelineController struct {
	timelineUC usecase.TimelineUseCase
}

// NewTimelineController creates a new timeline controller.
func NewTimelineController(timelineUC usecase.TimelineUseCase) *TimelineController {
	return &TimelineController{timelineUC: timelineUC}
}

// RegisterRoutes registers /cases/:caseId/timeline and
// /cases/:caseId/docket-sheet under rg.
func (c *TimelineController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	rg.GET("/cases/:caseId/timeline", middleware.RoleGate(resolver, entity.RolePublic), c.GetTimeline)
	rg.GET("/cases/:caseId/docket-sheet", middleware.RoleGate(resolver, entity.RolePublic), c.GetDocketSheet)
}

// GetTimeline returns the merged, sealing-filtered case-history stream.
func (c *TimelineController) GetTimeline(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	role, _ := middleware.GetRole(ctx)

	var req dto.TimelineListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	page, err := c.timelineUC.GetTimeline(ctx.Request.Context(), court.ID, ctx.Param("caseId"), role, req.Limit, req.Offset)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.TimelinePageToResponse(page.Entries, page.Total, req.Limit, req.Offset))
}

// GetDocketSheet returns the denormalized case header, entries, and active
// party list.
func (c *TimelineController) GetDocketSheet(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	role, _ := middleware.GetRole(ctx)

	sheet, err := c.timelineUC.GetDocketSheet(ctx.Request.Context(), court.ID, ctx.Param("caseId"), role)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocketSheetToResponse(sheet))
}
