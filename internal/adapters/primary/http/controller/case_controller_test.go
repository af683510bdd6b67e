//go:build integration

package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/testing/testhelper"
)

// TestCaseController_CreateCase tests the POST /cases endpoint.
func TestCaseController_CreateCase(t *testing.T) {
	pool := testhelper.GetTestPool(t)
	ts := testhelper.NewTestServer(t, pool)
	client := testhelper.NewHTTPClient(t, ts.URL())

	courtID := testhelper.CreateTestCourt(t, pool, "District of Test", "TESTD")
	defer testhelper.CleanupCourt(t, pool, courtID)

	clerkToken := testhelper.GenerateTestToken("clerk-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleClerk),
	})
	attorneyToken := testhelper.GenerateTestToken("attorney-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleAttorney),
	})

	t.Run("success with Clerk role", func(t *testing.T) {
		req := map[string]string{
			"caseNumber": "1:26-cv-00001",
			"title":      "Roe v. Wade",
			"caseType":   "CIVIL",
		}

		resp, body := client.
			WithAuth(clerkToken).
			WithCourtDistrict("TESTD").
			POST("/api/v1/cases", req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		created := testhelper.ParseJSON[map[string]interface{}](t, body)
		assert.Equal(t, "1:26-cv-00001", created["caseNumber"])
		assert.Equal(t, "OPEN", created["status"])

		defer testhelper.CleanupCase(t, pool, created["id"].(string))
	})

	t.Run("forbidden for Attorney role", func(t *testing.T) {
		req := map[string]string{
			"caseNumber": "1:26-cv-00002",
			"title":      "Doe v. Roe",
			"caseType":   "CIVIL",
		}

		resp, _ := client.
			WithAuth(attorneyToken).
			WithCourtDistrict("TESTD").
			POST("/api/v1/cases", req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("validation missing case number", func(t *testing.T) {
		req := map[string]string{
			"title":    "Missing Case Number",
			"caseType": "CIVIL",
		}

		resp, _ := client.
			WithAuth(clerkToken).
			WithCourtDistrict("TESTD").
			POST("/api/v1/cases", req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request without X-Court-District header", func(t *testing.T) {
		req := map[string]string{
			"caseNumber": "1:26-cv-00003",
			"title":      "No District",
			"caseType":   "CIVIL",
		}

		resp, _ := client.WithAuth(clerkToken).POST("/api/v1/cases", req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unauthorized without token", func(t *testing.T) {
		req := map[string]string{
			"caseNumber": "1:26-cv-00004",
			"title":      "No Token",
			"caseType":   "CIVIL",
		}

		resp, _ := client.WithCourtDistrict("TESTD").POST("/api/v1/cases", req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// TestCaseController_GetCase tests the GET /cases/:caseId endpoint.
func TestCaseController_GetCase(t *testing.T) {
	pool := testhelper.GetTestPool(t)
	ts := testhelper.NewTestServer(t, pool)
	client := testhelper.NewHTTPClient(t, ts.URL())

	courtID := testhelper.CreateTestCourt(t, pool, "District of Get", "GETD1")
	defer testhelper.CleanupCourt(t, pool, courtID)

	caseID := testhelper.CreateTestCase(t, pool, courtID, "1:26-cv-00010", "Smith v. Jones", entity.CaseTypeCivil)
	defer testhelper.CleanupCase(t, pool, caseID)

	publicToken := testhelper.GenerateTestToken("public-1", string(entity.RolePublic), map[string]string{})

	t.Run("success for public role", func(t *testing.T) {
		resp, body := client.
			WithAuth(publicToken).
			WithCourtDistrict("GETD1").
			GET("/api/v1/cases/" + caseID)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := testhelper.ParseJSON[map[string]interface{}](t, body)
		assert.Equal(t, caseID, got["id"])
		assert.Equal(t, "Smith v. Jones", got["title"])
	})

	t.Run("not found for unknown case", func(t *testing.T) {
		resp, _ := client.
			WithAuth(publicToken).
			WithCourtDistrict("GETD1").
			GET("/api/v1/cases/00000000-0000-0000-0000-000000000000")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// TestCaseController_TransitionCase tests the POST /cases/:caseId/transition endpoint.
func TestCaseController_TransitionCase(t *testing.T) {
	pool := testhelper.GetTestPool(t)
	ts := testhelper.NewTestServer(t, pool)
	client := testhelper.NewHTTPClient(t, ts.URL())

	courtID := testhelper.CreateTestCourt(t, pool, "District of Transition", "TRND1")
	defer testhelper.CleanupCourt(t, pool, courtID)

	clerkToken := testhelper.GenerateTestToken("clerk-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleClerk),
	})

	t.Run("success closing an open case", func(t *testing.T) {
		caseID := testhelper.CreateTestCase(t, pool, courtID, "1:26-cv-00020", "Stayed Case", entity.CaseTypeCivil)
		defer testhelper.CleanupCase(t, pool, caseID)

		resp, body := client.
			WithAuth(clerkToken).
			WithCourtDistrict("TRND1").
			POST("/api/v1/cases/"+caseID+"/transition", map[string]string{"target": "CLOSED"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := testhelper.ParseJSON[map[string]interface{}](t, body)
		assert.Equal(t, "CLOSED", got["status"])
	})

	t.Run("invalid transition rejected", func(t *testing.T) {
		caseID := testhelper.CreateTestCase(t, pool, courtID, "1:26-cv-00021", "Bad Transition", entity.CaseTypeCivil)
		defer testhelper.CleanupCase(t, pool, caseID)

		resp, _ := client.
			WithAuth(clerkToken).
			WithCourtDistrict("TRND1").
			POST("/api/v1/cases/"+caseID+"/transition", map[string]string{"target": "REOPENED"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
