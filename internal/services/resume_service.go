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

// ResumeService backs the resume-builder variant: its own accounts, one
// upserted draft per account, and best-effort generated-CV records.
type ResumeService struct {
	DB *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{DB: db}
}

func (s *ResumeService) Signup(ctx context.Context, req *dtos.SignupRequest) (*models.ResumeUser, error) {
	var existing models.ResumeUser
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.New(apperr.Duplicate, "Email already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Server error!", err)
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error!", err)
	}
	user := &models.ResumeUser{
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error!", err)
	}
	return user, nil
}

// Login shares one failure message between unknown email and wrong
// password.
func (s *ResumeService) Login(ctx context.Context, email, password string) (*models.ResumeUser, error) {
	var user models.ResumeUser
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.InvalidCredentials, "Invalid credentials!")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error!", err)
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, apperr.New(apperr.InvalidCredentials, "Invalid credentials!")
	}
	return &user, nil
}

// UpdateProfile merges provided fields into the account found by email.
func (s *ResumeService) UpdateProfile(ctx context.Context, req *dtos.ResumeProfileUpdateRequest) (*models.ResumeUser, error) {
	var user models.ResumeUser
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "User not found!")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Something went wrong!", err)
	}

	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Skills != "" {
		user.Skills = req.Skills
	}
	if err := s.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Something went wrong!", err)
	}
	return &user, nil
}

// SubmitDraft upserts the account's single draft, keyed by its email.
func (s *ResumeService) SubmitDraft(ctx context.Context, req *dtos.ResumeSubmitRequest) (*models.ResumeDraft, error) {
	var user models.ResumeUser
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	fields := models.ResumeDraft{
		UserEmail:  user.Email,
		FirstName:  req.FirstName,
		Surname:    req.Surname,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Email:      req.Email,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	}
	var draft models.ResumeDraft
	err = s.DB.WithContext(ctx).
		Where(models.ResumeDraft{UserEmail: user.Email}).
		Assign(fields).
		FirstOrCreate(&draft).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return &draft, nil
}

func (s *ResumeService) GetDraft(ctx context.Context, userEmail string) (*models.ResumeDraft, error) {
	var draft models.ResumeDraft
	err := s.DB.WithContext(ctx).Where("user_email = ?", userEmail).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Resume not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return &draft, nil
}

// SaveGenerated records a generated CV for an authenticated user.
func (s *ResumeService) SaveGenerated(ctx context.Context, resume *models.Resume) error {
	if err := s.DB.WithContext(ctx).Create(resume).Error; err != nil {
		return apperr.Wrap(apperr.Internal, "Error saving resume", err)
	}
	return nil
}

func (s *ResumeService) ListGenerated(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	resumes := []models.Resume{}
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error fetching resumes", err)
	}
	return resumes, nil
}
