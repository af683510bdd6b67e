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

// CaseController handles case lifecycle HTTP requests. Every route sits
// behind TenantGuard; case creation and status transitions additionally
// require Clerk-or-above.
type CaseController struct {
	caseUC usecase.CaseUseCase
}

// NewCaseController creates a new case controller.
func NewCaseController(caseUC usecase.CaseUseCase) *CaseController {
	return &CaseController{caseUC: caseUC}
}

// RegisterRoutes registers all /cases routes under rg, which must already
// carry TenantGuard.
func (c *CaseController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	cases := rg.Group("/cases")
	{
		cases.GET("", middleware.RoleGate(resolver, entity.RolePublic), c.ListCases)
		cases.POST("", middleware.RoleGate(resolver, entity.RoleClerk), c.CreateCase)
		cases.GET("/:caseId", middleware.RoleGate(resolver, entity.RolePublic), c.GetCase)
		cases.POST("/:caseId/transition", middleware.RoleGate(resolver, entity.RoleClerk), c.TransitionCase)
	}
}

// CreateCase opens a new case.
func (c *CaseController) CreateCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.CreateCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	created, err := c.caseUC.CreateCase(ctx.Request.Context(), mapper.CreateCaseRequestToCommand(court.ID, req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.CaseToResponse(created))
}

// GetCase retrieves a single case.
func (c *CaseController) GetCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	result, err := c.caseUC.GetCase(ctx.Request.Context(), court.ID, ctx.Param("caseId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.CaseToResponse(result))
}

// ListCases lists cases in the court with optional filters.
func (c *CaseController) ListCases(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.CaseListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filters := mapper.CaseListRequestToFilters(req)
	results, err := c.caseUC.ListCases(ctx.Request.Context(), court.ID, filters)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.CasesToPaginatedResponse(results, int64(filters.Offset+len(results)), req.Page, req.PerPage))
}

// TransitionCase moves a case to a new status.
func (c *CaseController) TransitionCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.TransitionCaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	result, err := c.caseUC.TransitionCase(ctx.Request.Context(), mapper.TransitionCaseRequestToCommand(court.ID, ctx.Param("caseId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.CaseToResponse(result))
}
