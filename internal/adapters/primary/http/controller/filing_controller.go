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

// FilingController handles HTTP requests for the Filing Submission Pipeline.
type FilingController struct {
	filingUC usecase.FilingUseCase
}

// NewFilingController creates a new filing controller.
func NewFilingController(filingUC usecase.FilingUseCase) *FilingController {
	return &FilingController{filingUC: filingUC}
}

// RegisterRoutes registers all /cases/:caseId/filings routes under rg.
func (c *FilingController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	filings := rg.Group("/cases/:caseId/filings")
	{
		filings.GET("", middleware.RoleGate(resolver, entity.RolePublic), c.ListByCase)
		filings.POST("/validate", middleware.RoleGate(resolver, entity.RoleAttorney), c.ValidateFiling)
		filings.POST("", middleware.RoleGate(resolver, entity.RoleAttorney), c.SubmitFiling)
		filings.GET("/:filingId", middleware.RoleGate(resolver, entity.RolePublic), c.GetFiling)
		filings.POST("/:filingId/accept", middleware.RoleGate(resolver, entity.RoleClerk), c.Accept)
		filings.POST("/:filingId/reject", middleware.RoleGate(resolver, entity.RoleClerk), c.Reject)
	}
}

// ValidateFiling dry-runs a filing's validation without persisting anything.
func (c *FilingController) ValidateFiling(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.ValidateFilingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	result, err := c.filingUC.ValidateFiling(ctx.Request.Context(), mapper.ValidateFilingRequestToCommand(court.ID, ctx.Param("caseId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewValidationErrorResponse(result))
}

// SubmitFiling runs the full submission pipeline.
func (c *FilingController) SubmitFiling(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.SubmitFilingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filing, nef, err := c.filingUC.SubmitFiling(ctx.Request.Context(), mapper.SubmitFilingRequestToCommand(court.ID, ctx.Param("caseId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	resp := gin.H{"filing": mapper.FilingToResponse(filing)}
	if nef != nil {
		resp["nef"] = mapper.NefToResponse(nef)
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetFiling retrieves a filing.
func (c *FilingController) GetFiling(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	filing, err := c.filingUC.GetFiling(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("filingId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.FilingToResponse(filing))
}

// ListByCase lists filings in a case with optional filters.
func (c *FilingController) ListByCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.FilingListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filters := mapper.FilingListRequestToFilters(req)
	filings, err := c.filingUC.ListByCase(ctx.Request.Context(), court.ID, ctx.Param("caseId"), filters)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.FilingsToPaginatedResponse(filings, req.Page, req.PerPage, filters.Offset))
}

// Accept terminally accepts a submitted filing.
func (c *FilingController) Accept(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	filing, err := c.filingUC.Accept(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("filingId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.FilingToResponse(filing))
}

// Reject terminally rejects a submitted filing.
func (c *FilingController) Reject(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.RejectFilingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filing, err := c.filingUC.Reject(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("filingId"), mapper.RejectFilingRequestToIssues(req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.FilingToResponse(filing))
}
