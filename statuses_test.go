package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"
)

// TestStatuses tests the /api/statuses endpoints
func TestStatuses(t *testing.T) {
	// Clean data before test
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should return empty list when no statuses exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/statuses", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var statuses []Status
		assertNoError(t, parseJSONResponse(resp, &statuses))
		if len(statuses) != 0 {
			t.Errorf("Expected empty list, got %d statuses", len(statuses))
		}
	})

	t.Run("should return the seeded defaults", func(t *testing.T) {
		assertNoError(t, seedDefaults(context.Background(), repo))

		resp := makeRequest("GET", "/api/statuses", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var statuses []Status
		assertNoError(t, parseJSONResponse(resp, &statuses))
		if len(statuses) != 3 {
			t.Fatalf("Expected 3 statuses, got %d", len(statuses))
		}
		if statuses[0].Name != "Business" || statuses[1].Name != "Personal" || statuses[2].Name != "Tax" {
			t.Errorf("Expected [Business Personal Tax], got %+v", statuses)
		}
	})

	var created Status

	t.Run("should create status with valid data", func(t *testing.T) {
		resp := makeRequest("POST", "/api/statuses", bytes.NewBufferString(`{"name": "  Family  "}`))

		assertStatusCode(t, http.StatusCreated, resp.Code)
		assertNoError(t, parseJSONResponse(resp, &created))
		if created.Name != "Family" || created.ID == "" {
			t.Errorf("Expected created Family status, got %+v", created)
		}
	})

	t.Run("should return 409 for duplicate name", func(t *testing.T) {
		resp := makeRequest("POST", "/api/statuses", bytes.NewBufferString(`{"name": "Tax"}`))

		assertStatusCode(t, http.StatusConflict, resp.Code)
	})

	t.Run("should fail with missing name", func(t *testing.T) {
		resp := makeRequest("POST", "/api/statuses", bytes.NewBufferString(`{}`))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should rename status", func(t *testing.T) {
		resp := makeRequest("PUT", "/api/statuses/"+created.ID, bytes.NewBufferString(`{"name": "Household"}`))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var status Status
		assertNoError(t, parseJSONResponse(resp, &status))
		if status.ID != created.ID || status.Name != "Household" {
			t.Errorf("Expected %s renamed to Household, got %+v", created.ID, status)
		}
	})

	t.Run("should return 409 when renaming onto a taken name", func(t *testing.T) {
		resp := makeRequest("PUT", "/api/statuses/"+created.ID, bytes.NewBufferString(`{"name": "Business"}`))

		assertStatusCode(t, http.StatusConflict, resp.Code)
	})

	t.Run("should return 404 when renaming a non-existent status", func(t *testing.T) {
		resp := makeRequest("PUT", "/api/statuses/550e8400-e29b-41d4-a716-446655440000", bytes.NewBufferString(`{"name": "Other"}`))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should delete status", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/statuses/"+created.ID, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("DELETE", "/api/statuses/"+created.ID, nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 400 for invalid UUID", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/statuses/nope", nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		resp = makeRequest("PUT", "/api/statuses/nope", bytes.NewBufferString(`{"name": "Other"}`))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
