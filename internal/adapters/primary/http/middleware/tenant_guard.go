package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
	"github.com/fedcourts/docket-engine/internal/infra/logging"
)

const (
	// CourtDistrictHeader is the header every tenant-scoped request carries.
	CourtDistrictHeader = "X-Court-District"
	// courtKey is the context key for the resolved Court.
	courtKey = "court"
	// roleKey is the context key for the requester's resolved role.
	roleKey = "role"
)

// TenantGuard resolves the X-Court-District header into a Court row and
// stores it on the context, rejecting requests for unknown or missing
// districts before any handler runs. It must run after JWTAuth.
func TenantGuard(tenants usecase.TenantUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		courtCode := c.GetHeader(CourtDistrictHeader)
		if courtCode == "" {
			abortWithError(c, http.StatusBadRequest, entity.ErrMissingCourtDistrict)
			return
		}

		court, err := tenants.ResolveCourt(c.Request.Context(), courtCode)
		if err != nil {
			abortWithError(c, http.StatusNotFound, entity.ErrCourtNotFound)
			return
		}

		c.Set(courtKey, court)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logging.CourtIDKey, court.ID))
		c.Next()
	}
}

// RoleGate resolves the caller's effective role for the current court and
// rejects the request unless it meets minRole's permission weight. It must
// run after TenantGuard and JWTAuth.
func RoleGate(resolver usecase.RoleResolverUseCase, minRole entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		court, ok := GetCourt(c)
		if !ok {
			abortWithError(c, http.StatusBadRequest, entity.ErrMissingCourtDistrict)
			return
		}
		principal, _ := GetPrincipal(c)

		role := resolver.Resolve(c.Request.Context(), principal, court.ID)
		if !role.HasPermission(minRole) {
			abortWithError(c, http.StatusForbidden, entity.ErrInsufficientRole)
			return
		}

		c.Set(roleKey, role)
		c.Next()
	}
}

// GetCourt retrieves the tenant-resolved Court from the Gin context.
func GetCourt(c *gin.Context) (*entity.Court, bool) {
	if val, exists := c.Get(courtKey); exists {
		if court, ok := val.(*entity.Court); ok {
			return court, true
		}
	}
	return nil, false
}

// GetRole retrieves the requester's resolved role from the Gin context.
func GetRole(c *gin.Context) (entity.Role, bool) {
	if val, exists := c.Get(roleKey); exists {
		if role, ok := val.(entity.Role); ok {
			return role, true
		}
	}
	return "", false
}
