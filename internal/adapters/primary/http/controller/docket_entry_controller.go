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

// DocketEntryController handles docket entry HTTP requests.
type DocketEntryController struct {
	entryUC usecase.DocketEntryUseCase
}

// NewDocketEntryController creates a new docket entry controller.
func NewDocketEntryController(entryUC usecase.DocketEntryUseCase) *DocketEntryController {
	return &DocketEntryController{entryUC: entryUC}
}

// RegisterRoutes registers all /cases/:caseId/entries routes, plus the
// cross-case /docket/search route, under rg.
func (c *DocketEntryController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	entries := rg.Group("/cases/:caseId/entries")
	{
		entries.GET("", middleware.RoleGate(resolver, entity.RolePublic), c.ListByCase)
		entries.POST("", middleware.RoleGate(resolver, entity.RoleClerk), c.CreateEntry)
		entries.GET("/statistics", middleware.RoleGate(resolver, entity.RolePublic), c.Statistics)
		entries.GET("/:entryId", middleware.RoleGate(resolver, entity.RolePublic), c.GetEntry)
		entries.POST("/:entryId/link-document", middleware.RoleGate(resolver, entity.RoleClerk), c.LinkDocument)
		entries.DELETE("/:entryId", middleware.RoleGate(resolver, entity.RoleClerk), c.DeleteEntry)
	}

	rg.GET("/docket/search", middleware.RoleGate(resolver, entity.RolePublic), c.Search)
}

// Search finds entries across every case in the tenant-scoped court,
// filtered by sealing visibility the same way ListByCase is.
func (c *DocketEntryController) Search(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.DocketEntrySearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filters := mapper.DocketEntrySearchRequestToFilters(req)
	entries, err := c.entryUC.Search(ctx.Request.Context(), court.ID, filters)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	role, _ := middleware.GetRole(ctx)
	visible := make([]*entity.DocketEntry, 0, len(entries))
	for _, e := range entries {
		if e.VisibleTo(role) {
			visible = append(visible, e)
		}
	}

	ctx.JSON(http.StatusOK, mapper.DocketEntriesToPaginatedResponse(visible, req.Page, req.PerPage, filters.Offset))
}

// CreateEntry appends a text-only entry directly to the docket.
func (c *DocketEntryController) CreateEntry(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateDocketEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	entry, err := c.entryUC.CreateEntry(ctx.Request.Context(), mapper.CreateDocketEntryRequestToCommand(court.ID, ctx.Param("caseId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.DocketEntryToResponse(entry))
}

// GetEntry retrieves a single docket entry.
func (c *DocketEntryController) GetEntry(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	entry, err := c.entryUC.GetEntry(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("entryId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	role, _ := middleware.GetRole(ctx)
	if !entry.VisibleTo(role) {
		HandleError(ctx, entity.ErrSealingVisibilityDenied)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocketEntryToResponse(entry))
}

// LinkDocument associates a document with an existing entry.
func (c *DocketEntryController) LinkDocument(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.LinkDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	if err := c.entryUC.LinkDocument(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("entryId"), req.DocumentID); err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByCase lists entries for a case, filtered by the requester's sealing
// visibility.
func (c *DocketEntryController) ListByCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.DocketEntryListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filters := mapper.DocketEntryListRequestToFilters(req)
	entries, err := c.entryUC.ListByCase(ctx.Request.Context(), court.ID, ctx.Param("caseId"), filters)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	role, _ := middleware.GetRole(ctx)
	visible := make([]*entity.DocketEntry, 0, len(entries))
	for _, e := range entries {
		if e.VisibleTo(role) {
			visible = append(visible, e)
		}
	}

	ctx.JSON(http.StatusOK, mapper.DocketEntriesToPaginatedResponse(visible, req.Page, req.PerPage, filters.Offset))
}

// Statistics computes aggregate entry counts for a case.
func (c *DocketEntryController) Statistics(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	stats, err := c.entryUC.Statistics(ctx.Request.Context(), court.ID, ctx.Param("caseId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocketStatisticsToResponse(stats))
}

// DeleteEntry removes an entry, rejecting if any filing references it.
func (c *DocketEntryController) DeleteEntry(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	if err := c.entryUC.DeleteEntry(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("entryId")); err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
