package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/mapper"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// TenantController handles admin-facing court listing, separate from the
// per-request X-Court-District resolution TenantGuard performs on every
// other route.
type TenantController struct {
	tenantUC usecase.TenantUseCase
}

// NewTenantController creates a new tenant controller.
func NewTenantController(tenantUC usecase.TenantUseCase) *TenantController {
	return &TenantController{tenantUC: tenantUC}
}

// RegisterRoutes registers the /courts route under rg. Unlike every other
// route, this one runs ahead of TenantGuard: there is no single court to
// scope to when listing all of them.
func (c *TenantController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courts", c.ListCourts)
}

// ListCourts returns every registered court.
func (c *TenantController) ListCourts(ctx *gin.Context) {
	courts, err := c.tenantUC.ListCourts(ctx.Request.Context())
	if err != nil {
		HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mapper.CourtsToResponses(courts))
}
