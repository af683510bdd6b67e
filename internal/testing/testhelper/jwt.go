//go:build integration

package testhelper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
)

// testSigningKey signs test tokens. Since JWKSURL is empty in tests, JWTAuth
// uses ParseUnverified and never checks the signature, but the token still
// has to be a well-formed JWT.
var testSigningKey = []byte("test-secret-key-for-integration-tests")

// GenerateTestToken creates a signed JWT for a principal with the given
// global role and per-court role grants.
func GenerateTestToken(subject, globalRole string, courtRoles map[string]string) string {
	claims := middleware.CourtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
		Email:      subject + "@example.com",
		GlobalRole: globalRole,
		CourtRoles: courtRoles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testSigningKey)
	if err != nil {
		panic("failed to sign test token: " + err.Error())
	}
	return tokenString
}

// GenerateExpiredToken creates an expired JWT for unauthorized-path tests.
func GenerateExpiredToken(subject string) string {
	claims := middleware.CourtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testSigningKey)
	if err != nil {
		panic("failed to sign test token: " + err.Error())
	}
	return tokenString
}
