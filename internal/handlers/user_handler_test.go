package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/auth"
)

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(nil, nil, nil, 3600, zerolog.Nop())
	r := gin.New()
	r.POST("/api/v1/user/register", h.Register)
	r.POST("/api/v1/user/login", h.Login)
	r.GET("/api/v1/user/logout", h.Logout)
	return r
}

func TestRegisterMissingFields(t *testing.T) {
	r := newUserRouter(t)

	form := "fullname=Test+User&email=test%40example.com"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/register", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Something is missing" {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := newUserRouter(t)

	form := "fullname=Test&email=test%40example.com&phoneNumber=123&password=pw&role=admin"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/register", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := newUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login",
		strings.NewReader(`{"email":"test@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Something is missing" {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestLogoutClearsTokenCookie(t *testing.T) {
	r := newUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.TokenCookie && cookie.Value == "" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("token cookie was not cleared")
	}
}
