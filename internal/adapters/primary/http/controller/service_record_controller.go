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

// ServiceRecordController handles service-of-process and NEF HTTP requests.
type ServiceRecordController struct {
	serviceRecordUC usecase.ServiceRecordUseCase
	nefUC           usecase.NefUseCase
}

// NewServiceRecordController creates a new service record controller.
func NewServiceRecordController(serviceRecordUC usecase.ServiceRecordUseCase, nefUC usecase.NefUseCase) *ServiceRecordController {
	return &ServiceRecordController{serviceRecordUC: serviceRecordUC, nefUC: nefUC}
}

// RegisterRoutes registers all /cases/:caseId/service-records and
// /cases/:caseId/filings/:filingId/nef routes under rg.
func (c *ServiceRecordController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	records := rg.Group("/cases/:caseId/service-records")
	records.Use(middleware.RoleGate(resolver, entity.RoleClerk))
	{
		records.POST("", c.CreateRecord)
		records.POST("/bulk", c.BulkCreate)
		records.POST("/:recordId/complete", c.Complete)
	}

	rg.GET("/cases/:caseId/filings/:filingId/nef", middleware.RoleGate(resolver, entity.RolePublic), c.GetNef)
}

// CreateRecord records a single service obligation.
func (c *ServiceRecordController) CreateRecord(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.CreateServiceRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	record, err := c.serviceRecordUC.CreateRecord(ctx.Request.Context(), mapper.CreateServiceRecordRequestToCommand(court.ID, ctx.Param("caseId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.ServiceRecordToResponse(record))
}

// BulkCreate seeds a service record for every active party on a document's case.
func (c *ServiceRecordController) BulkCreate(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.BulkCreateServiceRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	records, err := c.serviceRecordUC.BulkCreateForDocument(ctx.Request.Context(), court.ID, ctx.Param("caseId"), req.DocumentID)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.ServiceRecordsToResponses(records))
}

// Complete marks a service record as accomplished.
func (c *ServiceRecordController) Complete(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.CompleteServiceRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	record, err := c.serviceRecordUC.Complete(ctx.Request.Context(), mapper.CompleteServiceRecordRequestToCommand(court.ID, ctx.Param("caseId"), ctx.Param("recordId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.ServiceRecordToResponse(record))
}

// GetNef retrieves the Notice of Electronic Filing generated for a filing.
func (c *ServiceRecordController) GetNef(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	nef, err := c.nefUC.GetByFiling(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("filingId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.NefToResponse(nef))
}
