package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Validation failures must be rejected at the boundary, before any store
// access; these routers carry no database at all.
func newJobRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(nil, zerolog.Nop())
	r := gin.New()
	r.POST("/api/v1/job/post", h.Create)
	r.GET("/api/v1/job/get/:id", h.GetByID)
	r.PUT("/api/v1/job/update/:id", h.Update)
	r.DELETE("/api/v1/job/delete/:id", h.Delete)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestCreateJobMissingFields(t *testing.T) {
	r := newJobRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/job/post",
		strings.NewReader(`{"title":"Software Engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
	if body["message"] != "Please fill all the fields." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestJobEndpointsRejectMalformedID(t *testing.T) {
	r := newJobRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/job/get/not-a-uuid", ""},
		{http.MethodPut, "/api/v1/job/update/123", `{}`},
		{http.MethodDelete, "/api/v1/job/delete/xyz", ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: status = %d, want 400", tc.method, tc.path, w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Invalid job ID format" {
			t.Fatalf("%s %s: message = %q", tc.method, tc.path, body["message"])
		}
	}
}
