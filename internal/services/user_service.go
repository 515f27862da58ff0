package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/models"
)

type UserService struct {
	Store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{Store: store}
}

// Register hashes the password and creates the account. The photo URL,
// if any, was produced by the object-storage collaborator beforehand.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest, photoURL string) (*models.User, error) {
	_, err := s.Store.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperr.New(apperr.Duplicate, "User already exist with this email.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Server error while registering user.", err)
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while registering user.", err)
	}

	user := &models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    digest,
		Role:        req.Role,
		Profile: models.Profile{
			Skills:       []string{},
			ProfilePhoto: photoURL,
		},
	}
	if err := s.Store.Create(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while registering user.", err)
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password share one
// message so accounts cannot be enumerated; a role mismatch is reported
// distinctly.
func (s *UserService) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	user, err := s.Store.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.InvalidCredentials, "Incorrect email or password.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while logging in.", err)
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, apperr.New(apperr.InvalidCredentials, "Incorrect email or password.")
	}
	if role != user.Role {
		return nil, apperr.New(apperr.InvalidCredentials, "Account doesn't exist with current role.")
	}
	return user, nil
}

type ProfileUpdate struct {
	FullName    string
	Email       string
	PhoneNumber string
	Bio         string
	// Raw comma-delimited skills; empty means "not provided".
	Skills string
	// Résumé upload result; both empty means "no file".
	ResumeURL      string
	ResumeOriginal string
}

// UpdateProfile merges only the provided fields into the stored record.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*models.User, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "User not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating profile.", err)
	}

	if upd.FullName != "" {
		user.FullName = upd.FullName
	}
	if upd.Email != "" {
		user.Email = upd.Email
	}
	if upd.PhoneNumber != "" {
		user.PhoneNumber = upd.PhoneNumber
	}
	if upd.Bio != "" {
		user.Profile.Bio = upd.Bio
	}
	if upd.Skills != "" {
		user.Profile.Skills = ParseRequirements(upd.Skills)
	}
	if upd.ResumeURL != "" {
		user.Profile.Resume = upd.ResumeURL
		user.Profile.ResumeOriginalName = upd.ResumeOriginal
	}

	if err := s.Store.Save(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating profile.", err)
	}
	return user, nil
}
