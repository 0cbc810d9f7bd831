package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/launchjobs/jobboard-api/internal/services"
)

func respond(t *testing.T, err error, text errorText) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, err, text)

	var body map[string]string
	if jsonErr := json.Unmarshal(w.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("invalid JSON body: %v", jsonErr)
	}
	return w.Code, body["error"]
}

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid id", services.ErrInvalidID, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"application not found", services.ErrApplicationNotFound, http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"inactive", services.ErrJobInactive, http.StatusBadRequest},
		{"duplicate", services.ErrDuplicateApplication, http.StatusBadRequest},
		{"invalid update", services.ErrInvalidUpdate, http.StatusBadRequest},
	}

	for _, tc := range cases {
		code, _ := respond(t, tc.err, errorText{Internal: "Server error"})
		if code != tc.wantCode {
			t.Errorf("%s: status = %d, want %d", tc.name, code, tc.wantCode)
		}
	}
}

func TestRespondError_ContextualMessages(t *testing.T) {
	_, msg := respond(t, services.ErrForbidden, errorText{Forbidden: "Not authorized to update this job"})
	if msg != "Not authorized to update this job" {
		t.Errorf("forbidden message = %q, want endpoint wording", msg)
	}

	_, msg = respond(t, services.ErrInvalidID, errorText{InvalidID: "Invalid job ID format"})
	if msg != "Invalid job ID format" {
		t.Errorf("invalid id message = %q, want endpoint wording", msg)
	}

	// zero values fall back to the generic wording
	_, msg = respond(t, services.ErrForbidden, errorText{})
	if msg != "Not authorized" {
		t.Errorf("forbidden fallback = %q, want %q", msg, "Not authorized")
	}
	_, msg = respond(t, services.ErrInvalidID, errorText{})
	if msg != "Invalid ID format" {
		t.Errorf("invalid id fallback = %q, want %q", msg, "Invalid ID format")
	}
}

func TestRespondError_ApplicationNotFoundMessage(t *testing.T) {
	_, msg := respond(t, services.ErrApplicationNotFound, errorText{})
	if msg != "Application not found" {
		t.Errorf("message = %q, want %q", msg, "Application not found")
	}
}
