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

// UploadController handles staged-upload HTTP requests for the Upload Stager.
type UploadController struct {
	uploadUC usecase.UploadUseCase
}

// NewUploadController creates a new upload controller.
func NewUploadController(uploadUC usecase.UploadUseCase) *UploadController {
	return &UploadController{uploadUC: uploadUC}
}

// RegisterRoutes registers all /cases/:caseId/uploads routes under rg.
func (c *UploadController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	uploads := rg.Group("/cases/:caseId/uploads")
	uploads.Use(middleware.RoleGate(resolver, entity.RoleAttorney))
	{
		uploads.POST("", c.InitUpload)
		uploads.POST("/:uploadId/finalize", c.FinalizeUpload)
	}
}

// InitUpload stages a new upload slot and returns a presigned PUT URL.
func (c *UploadController) InitUpload(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.InitUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	result, err := c.uploadUC.InitUpload(ctx.Request.Context(), mapper.InitUploadRequestToCommand(court.ID, ctx.Param("caseId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapper.InitUploadResultToResponse(result))
}

// FinalizeUpload confirms a staged object landed in storage.
func (c *UploadController) FinalizeUpload(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	upload, err := c.uploadUC.FinalizeUpload(ctx.Request.Context(), usecase.FinalizeUploadCommand{
		CourtID:  court.ID,
		CaseID:   ctx.Param("caseId"),
		UploadID: ctx.Param("uploadId"),
	})
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.UploadToResponse(upload))
}
