package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/mapper"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// DocumentController handles document storage and sealing-policy HTTP requests.
type DocumentController struct {
	documentUC usecase.DocumentUseCase
	eventRepo  port.DocumentEventRepository
	storage    port.StorageAdapter
}

// NewDocumentController creates a new document controller.
func NewDocumentController(documentUC usecase.DocumentUseCase, eventRepo port.DocumentEventRepository, storage port.StorageAdapter) *DocumentController {
	return &DocumentController{documentUC: documentUC, eventRepo: eventRepo, storage: storage}
}

// RegisterRoutes registers all /cases/:caseId/documents routes under rg.
func (c *DocumentController) RegisterRoutes(rg *gin.RouterGroup, resolver usecase.RoleResolverUseCase) {
	documents := rg.Group("/cases/:caseId/documents")
	{
		documents.GET("", middleware.RoleGate(resolver, entity.RolePublic), c.ListByCase)
		documents.POST("/promote", middleware.RoleGate(resolver, entity.RoleClerk), c.PromoteAttachment)
		documents.GET("/:documentId", middleware.RoleGate(resolver, entity.RolePublic), c.GetDocument)
		documents.GET("/:documentId/events", middleware.RoleGate(resolver, entity.RoleClerk), c.ListEvents)
		documents.POST("/:documentId/seal", middleware.RoleGate(resolver, entity.RoleJudge), c.Seal)
		documents.POST("/:documentId/unseal", middleware.RoleGate(resolver, entity.RoleJudge), c.Unseal)
		documents.POST("/:documentId/replace", middleware.RoleGate(resolver, entity.RoleClerk), c.Replace)
		documents.POST("/:documentId/strike", middleware.RoleGate(resolver, entity.RoleJudge), c.Strike)
	}
}

// GetDocument retrieves a document, enforcing the sealing visibility matrix,
// and attaches a presigned download URL when the requester may see it.
func (c *DocumentController) GetDocument(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	role, _ := middleware.GetRole(ctx)

	doc, err := c.documentUC.GetDocument(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("documentId"), role)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	resp := mapper.DocumentToResponse(doc)
	if url, err := c.storage.GetURL(ctx.Request.Context(), doc.StorageKey); err == nil {
		resp.DownloadURL = url
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListByCase lists documents visible to the requester's role.
func (c *DocumentController) ListByCase(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	role, _ := middleware.GetRole(ctx)

	var req dto.DocumentListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	filters := mapper.DocumentListRequestToFilters(req)
	docs, err := c.documentUC.ListByCase(ctx.Request.Context(), court.ID, ctx.Param("caseId"), filters, role)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocumentsToPaginatedResponse(docs, req.Page, req.PerPage, filters.Offset))
}

// Seal applies a non-Public sealing level to a document.
func (c *DocumentController) Seal(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	var req dto.SealDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	doc, err := c.documentUC.Seal(ctx.Request.Context(), mapper.SealDocumentRequestToCommand(court.ID, ctx.Param("caseId"), ctx.Param("documentId"), req))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocumentToResponse(doc))
}

// Unseal resets a document to Public.
func (c *DocumentController) Unseal(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	doc, err := c.documentUC.Unseal(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("documentId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocumentToResponse(doc))
}

// Replace supersedes a document with one built from a finalized upload.
func (c *DocumentController) Replace(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.ReplaceDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	doc, err := c.documentUC.Replace(ctx.Request.Context(), mapper.ReplaceDocumentRequestToCommand(court.ID, ctx.Param("caseId"), ctx.Param("documentId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocumentToResponse(doc))
}

// Strike marks a document as stricken from the record.
func (c *DocumentController) Strike(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	if err := c.documentUC.Strike(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("documentId")); err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PromoteAttachment turns a docket attachment into a formal Document.
func (c *DocumentController) PromoteAttachment(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.PromoteAttachmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	doc, entry, err := c.documentUC.PromoteAttachment(ctx.Request.Context(), mapper.PromoteAttachmentRequestToCommand(court.ID, ctx.Param("caseId"), req, userID))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"document":    mapper.DocumentToResponse(doc),
		"docketEntry": mapper.DocketEntryToResponse(entry),
	})
}

// ListEvents lists a document's audit trail.
func (c *DocumentController) ListEvents(ctx *gin.Context) {
	court, ok := middleware.GetCourt(ctx)
	if !ok {
		HandleError(ctx, entity.ErrMissingCourtDistrict)
		return
	}

	events, err := c.eventRepo.FindByDocument(ctx.Request.Context(), court.ID, ctx.Param("caseId"), ctx.Param("documentId"))
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.DocumentEventsToResponses(events))
}
