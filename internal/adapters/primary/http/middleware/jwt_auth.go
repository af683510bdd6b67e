package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/infra/config"
)

const (
	// userIDKey is the context key for the authenticated user ID.
	userIDKey = "user_id"
	// userEmailKey is the context key for the authenticated user email.
	userEmailKey = "user_email"
	// principalKey is the context key for the resolved Principal.
	principalKey = "principal"
)

// CourtClaims is the JWT claims shape issued by the identity provider: a
// global role plus a per-court role grant map, decoded straight into an
// entity.Principal.
type CourtClaims struct {
	jwt.RegisteredClaims
	Email      string            `json:"email,omitempty"`
	GlobalRole string            `json:"global_role,omitempty"`
	CourtRoles map[string]string `json:"court_roles,omitempty"`
}

// JWTAuth creates a middleware that validates JWT tokens using JWKS from the
// configured identity provider and resolves the caller's Principal.
func JWTAuth(authCfg *config.AuthConfig) gin.HandlerFunc {
	var jwks keyfunc.Keyfunc
	var jwksErr error

	if authCfg.JWKSURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		jwks, jwksErr = keyfunc.NewDefaultCtx(ctx, []string{authCfg.JWKSURL})
		if jwksErr != nil {
			slog.ErrorContext(ctx, "failed to initialize JWKS", slog.String("error", jwksErr.Error()))
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, entity.ErrMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, http.StatusUnauthorized, entity.ErrInvalidToken)
			return
		}
		tokenString := parts[1]

		claims, err := validateToken(tokenString, jwks, authCfg)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "token validation failed",
				slog.String("error", err.Error()),
				slog.String("operation_id", GetOperationID(c)),
			)
			abortWithError(c, http.StatusUnauthorized, err)
			return
		}

		c.Set(userIDKey, claims.Subject)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		c.Set(principalKey, buildPrincipal(claims))

		c.Next()
	}
}

func buildPrincipal(claims *CourtClaims) *entity.Principal {
	p := &entity.Principal{
		UserID:     claims.Subject,
		GlobalRole: entity.Role(claims.GlobalRole),
		CourtRoles: make(map[string]entity.Role, len(claims.CourtRoles)),
	}
	for courtID, role := range claims.CourtRoles {
		p.CourtRoles[courtID] = entity.Role(role)
	}
	return p
}

// validateToken validates the JWT token and returns its claims.
func validateToken(tokenString string, jwks keyfunc.Keyfunc, authCfg *config.AuthConfig) (*CourtClaims, error) {
	var claims CourtClaims

	if jwks == nil {
		_, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidToken, err)
		}
		return &claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims, jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return nil, entity.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, entity.ErrInvalidToken
	}

	if authCfg.Issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != authCfg.Issuer {
			return nil, entity.ErrInvalidToken
		}
	}

	if authCfg.Audience != "" {
		audience, err := claims.GetAudience()
		if err != nil {
			return nil, entity.ErrInvalidToken
		}
		found := false
		for _, aud := range audience {
			if aud == authCfg.Audience {
				found = true
				break
			}
		}
		if !found {
			return nil, entity.ErrInvalidToken
		}
	}

	return &claims, nil
}

// GetUserID retrieves the authenticated user ID from the Gin context.
func GetUserID(c *gin.Context) (string, bool) {
	if val, exists := c.Get(userIDKey); exists {
		if userID, ok := val.(string); ok && userID != "" {
			return userID, true
		}
	}
	return "", false
}

// GetPrincipal retrieves the resolved Principal from the Gin context.
func GetPrincipal(c *gin.Context) (*entity.Principal, bool) {
	if val, exists := c.Get(principalKey); exists {
		if p, ok := val.(*entity.Principal); ok {
			return p, true
		}
	}
	return nil, false
}

// abortWithError aborts the request with a JSON error response.
func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
	})
}
