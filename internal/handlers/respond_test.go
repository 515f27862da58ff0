package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/apperr"
)

func record(t *testing.T, handle gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handle(c)
	return w
}

func TestFailMapsTaxonomyKinds(t *testing.T) {
	cases := []struct {
		kind       apperr.Kind
		message    string
		wantStatus int
	}{
		{apperr.MissingField, "Something is missing", http.StatusBadRequest},
		{apperr.Duplicate, "User already exist with this email.", http.StatusBadRequest},
		{apperr.InvalidCredentials, "Incorrect email or password.", http.StatusBadRequest},
		{apperr.InvalidID, "Invalid job ID format", http.StatusBadRequest},
		{apperr.NotFound, "Job not found.", http.StatusNotFound},
		{apperr.Unauthorized, "User not authenticated.", http.StatusUnauthorized},
		{apperr.Internal, "Internal server error", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := record(t, func(c *gin.Context) {
			fail(c, zerolog.Nop(), apperr.New(tc.kind, tc.message))
		})
		if w.Code != tc.wantStatus {
			t.Fatalf("kind %v: status = %d, want %d", tc.kind, w.Code, tc.wantStatus)
		}
		body := decodeBody(t, w)
		if body["message"] != tc.message {
			t.Fatalf("kind %v: message = %q, want %q", tc.kind, body["message"], tc.message)
		}
		if body["success"] != false {
			t.Fatalf("kind %v: success = %v, want false", tc.kind, body["success"])
		}
	}
}

func TestFailHidesUnclassifiedErrors(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		fail(c, zerolog.Nop(), errors.New("pq: connection refused"))
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if body := decodeBody(t, w); body["message"] != "Internal server error" {
		t.Fatalf("message = %q, leaked internal detail", body["message"])
	}
}

func TestMissingUsesMissingFieldKind(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		missing(c, zerolog.Nop(), "Please fill all the fields.")
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := decodeBody(t, w); body["message"] != "Please fill all the fields." {
		t.Fatalf("message = %q", body["message"])
	}
}
