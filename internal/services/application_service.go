package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply creates a pending application for the session user. Applying
// twice to the same job is rejected.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	var existing models.Application
	err := s.DB.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&existing).Error
	if err == nil {
		return nil, apperr.New(apperr.Duplicate, "You have already applied for this job")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Server error while applying.", err)
	}

	var job models.Job
	err = s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while applying.", err)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(application).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while applying.", err)
	}
	return application, nil
}

// ListForApplicant returns the user's applications newest-first with job
// and company expanded.
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	applications := []models.Application{}
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching applications.", err)
	}
	return applications, nil
}

// Applicants returns the job with every application and its applicant
// expanded, for the recruiter view.
func (s *ApplicationService) Applicants(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Preload("Applications").
		Preload("Applications.Applicant").
		First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching applicants.", err)
	}
	return &job, nil
}

// UpdateStatus moves an application to pending/accepted/rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (*models.Application, error) {
	var application models.Application
	err := s.DB.WithContext(ctx).First(&application, "id = ?", applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Application not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating status.", err)
	}

	application.Status = status
	if err := s.DB.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating status.", err)
	}
	return &application, nil
}

// Count returns the number of applications for a job.
func (s *ApplicationService) Count(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Server error while counting applicants.", err)
	}
	return count, nil
}
