package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestKindStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{MissingField, http.StatusBadRequest},
		{Duplicate, http.StatusBadRequest},
		{InvalidCredentials, http.StatusBadRequest},
		{InvalidID, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Unauthorized, http.StatusUnauthorized},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.kind.Status(); got != tc.want {
			t.Fatalf("kind %d: status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "Server error", cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should match its cause")
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As should find *Error")
	}
	if appErr.Message != "Server error" {
		t.Fatalf("message = %q, want %q", appErr.Message, "Server error")
	}
}

func TestErrorString(t *testing.T) {
	if got := New(NotFound, "Job not found.").Error(); got != "Job not found." {
		t.Fatalf("Error() = %q", got)
	}
}
