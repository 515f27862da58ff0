package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/models"
)

// memUserStore keeps accounts in a map, reporting absence the same way
// the gorm-backed store does.
type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *memUserStore) Save(_ context.Context, user *models.User) error {
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func registerReq() *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		FullName:    "Test User",
		Email:       "test@example.com",
		PhoneNumber: "1234567890",
		Password:    "password123",
		Role:        models.RoleStudent,
	}
}

func asAppErr(t *testing.T, err error) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	return appErr
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newMemUserStore())

	user, err := svc.Register(context.Background(), registerReq(), "")
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if user.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword("password123", user.Password) {
		t.Fatal("stored digest does not verify")
	}

	_, err = svc.Register(context.Background(), registerReq(), "")
	appErr := asAppErr(t, err)
	if appErr.Kind != apperr.Duplicate {
		t.Fatalf("kind = %d, want Duplicate", appErr.Kind)
	}
	if appErr.Kind.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", appErr.Kind.Status())
	}
	if appErr.Message != "User already exist with this email." {
		t.Fatalf("message = %q", appErr.Message)
	}
}

// Unknown email and wrong password must be indistinguishable so that
// accounts cannot be enumerated.
func TestLoginFailuresShareOneMessage(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)
	if _, err := svc.Register(context.Background(), registerReq(), ""); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123", models.RoleStudent)
	_, errWrongPw := svc.Login(context.Background(), "test@example.com", "wrongpassword", models.RoleStudent)

	unknownErr := asAppErr(t, errUnknown)
	wrongPwErr := asAppErr(t, errWrongPw)

	if unknownErr.Kind != apperr.InvalidCredentials || wrongPwErr.Kind != apperr.InvalidCredentials {
		t.Fatalf("kinds = %d, %d, want InvalidCredentials", unknownErr.Kind, wrongPwErr.Kind)
	}
	if unknownErr.Message != wrongPwErr.Message {
		t.Fatalf("messages differ: %q vs %q", unknownErr.Message, wrongPwErr.Message)
	}
	if unknownErr.Kind.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", unknownErr.Kind.Status())
	}
}

func TestLoginRoleMismatch(t *testing.T) {
	svc := NewUserService(newMemUserStore())
	if _, err := svc.Register(context.Background(), registerReq(), ""); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "test@example.com", "password123", models.RoleRecruiter)
	appErr := asAppErr(t, err)

	if appErr.Kind.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", appErr.Kind.Status())
	}
	if appErr.Message != "Account doesn't exist with current role." {
		t.Fatalf("message = %q", appErr.Message)
	}
	if appErr.Message == "Incorrect email or password." {
		t.Fatal("role mismatch must not reuse the invalid-credentials message")
	}

	// Correct role still logs in.
	user, err := svc.Login(context.Background(), "test@example.com", "password123", models.RoleStudent)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("email = %q", user.Email)
	}
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)
	user, err := svc.Register(context.Background(), registerReq(), "")
	if err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{
		Bio:    "Systems tinkerer",
		Skills: ",Go, SQL ,,",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != "Test User" {
		t.Fatalf("untouched field changed: %q", updated.FullName)
	}
	if updated.Profile.Bio != "Systems tinkerer" {
		t.Fatalf("bio = %q", updated.Profile.Bio)
	}
	if len(updated.Profile.Skills) != 2 || updated.Profile.Skills[0] != "Go" || updated.Profile.Skills[1] != "SQL" {
		t.Fatalf("skills = %v", updated.Profile.Skills)
	}

	_, err = svc.UpdateProfile(context.Background(), uuid.New(), ProfileUpdate{Bio: "x"})
	if appErr := asAppErr(t, err); appErr.Kind != apperr.NotFound {
		t.Fatalf("kind = %d, want NotFound", appErr.Kind)
	}
}
