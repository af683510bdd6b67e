//go:build integration

package controller_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/testing/testhelper"
)

// TestDocketEntryController_CreateEntry tests the POST /cases/:caseId/entries endpoint.
func TestDocketEntryController_CreateEntry(t *testing.T) {
	pool := testhelper.GetTestPool(t)
	ts := testhelper.NewTestServer(t, pool)
	client := testhelper.NewHTTPClient(t, ts.URL())

	courtID := testhelper.CreateTestCourt(t, pool, "District of Entries", "ENTD1")
	defer testhelper.CleanupCourt(t, pool, courtID)

	caseID := testhelper.CreateTestCase(t, pool, courtID, "1:26-cv-00100", "Entries Case", entity.CaseTypeCivil)
	defer testhelper.CleanupCase(t, pool, caseID)

	clerkToken := testhelper.GenerateTestToken("clerk-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleClerk),
	})
	attorneyToken := testhelper.GenerateTestToken("attorney-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleAttorney),
	})

	t.Run("success with Clerk role", func(t *testing.T) {
		req := map[string]string{
			"entryType":   "MINUTE_ENTRY",
			"description": "Status conference held.",
		}

		resp, body := client.
			WithAuth(clerkToken).
			WithCourtDistrict("ENTD1").
			POST("/api/v1/cases/"+caseID+"/entries", req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		created := testhelper.ParseJSON[map[string]interface{}](t, body)
		assert.Equal(t, "MINUTE_ENTRY", created["entryType"])
		assert.Equal(t, "Status conference held.", created["description"])

		defer testhelper.CleanupDocketEntry(t, pool, created["id"].(string))
	})

	t.Run("forbidden for Attorney role", func(t *testing.T) {
		req := map[string]string{
			"entryType":   "TEXT_ONLY",
			"description": "Attorney cannot append entries directly.",
		}

		resp, _ := client.
			WithAuth(attorneyToken).
			WithCourtDistrict("ENTD1").
			POST("/api/v1/cases/"+caseID+"/entries", req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("validation missing description", func(t *testing.T) {
		req := map[string]string{
			"entryType": "TEXT_ONLY",
		}

		resp, _ := client.
			WithAuth(clerkToken).
			WithCourtDistrict("ENTD1").
			POST("/api/v1/cases/"+caseID+"/entries", req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation invalid entry type", func(t *testing.T) {
		req := map[string]string{
			"entryType":   "NOT_A_TYPE",
			"description": "Bad type.",
		}

		resp, _ := client.
			WithAuth(clerkToken).
			WithCourtDistrict("ENTD1").
			POST("/api/v1/cases/"+caseID+"/entries", req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestDocketEntryController_SealingVisibility tests that GetEntry enforces
// the sealing matrix for callers without sufficient role.
func TestDocketEntryController_SealingVisibility(t *testing.T) {
	pool := testhelper.GetTestPool(t)
	ts := testhelper.NewTestServer(t, pool)
	client := testhelper.NewHTTPClient(t, ts.URL())

	courtID := testhelper.CreateTestCourt(t, pool, "District of Sealing", "SEALD")
	defer testhelper.CleanupCourt(t, pool, courtID)

	caseID := testhelper.CreateTestCase(t, pool, courtID, "1:26-cv-00101", "Sealed Entry Case", entity.CaseTypeCivil)
	defer testhelper.CleanupCase(t, pool, caseID)

	entryID := testhelper.CreateTestDocketEntry(t, pool, courtID, caseID, 1, entity.EntryTypeOrder, "Sealed order", "judge-1")
	defer testhelper.CleanupDocketEntry(t, pool, entryID)

	_, err := pool.Exec(context.Background(),
		"UPDATE docket.docket_entries SET sealing_level = $1 WHERE id = $2",
		string(entity.SealingLevelSealedCourtOnly), entryID)
	if err != nil {
		t.Fatalf("failed to seal test entry: %v", err)
	}

	publicToken := testhelper.GenerateTestToken("public-1", string(entity.RolePublic), map[string]string{})
	judgeToken := testhelper.GenerateTestToken("judge-1", string(entity.RolePublic), map[string]string{
		courtID: string(entity.RoleJudge),
	})

	t.Run("public role denied sealed entry", func(t *testing.T) {
		resp, _ := client.
			WithAuth(publicToken).
			WithCourtDistrict("SEALD").
			GET("/api/v1/cases/" + caseID + "/entries/" + entryID)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("judge role can view sealed entry", func(t *testing.T) {
		resp, body := client.
			WithAuth(judgeToken).
			WithCourtDistrict("SEALD").
			GET("/api/v1/cases/" + caseID + "/entries/" + entryID)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := testhelper.ParseJSON[map[string]interface{}](t, body)
		assert.Equal(t, entryID, got["id"])
	})
}
