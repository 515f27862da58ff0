package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/models"
)

type JobService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewJobService(db *gorm.DB, log zerolog.Logger) *JobService {
	return &JobService{DB: db, Log: log}
}

// Create persists a job stamped with the authenticated creator.
func (s *JobService) Create(ctx context.Context, req *dtos.JobCreateRequest, creatorID uuid.UUID) (*models.Job, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, apperr.New(apperr.InvalidID, "Invalid company ID format")
	}
	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    ParseRequirements(req.Requirements),
		Salary:          req.Salary,
		ExperienceLevel: req.Experience,
		Location:        req.Location,
		JobType:         req.JobType,
		Position:        req.Position,
		CompanyID:       companyID,
		CreatedByID:     creatorID,
		Applications:    []models.Application{},
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while posting job", err)
	}
	return job, nil
}

// List returns jobs newest-first with the company expanded. keyword is a
// case-insensitive substring matched against title or description; empty
// matches everything.
func (s *JobService) List(ctx context.Context, keyword string) ([]models.Job, error) {
	jobs := []models.Job{}
	q := s.DB.WithContext(ctx).Preload("Company").Order("created_at DESC")
	if keyword != "" {
		pattern := "%" + keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if err := q.Find(&jobs).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching jobs", err)
	}
	return jobs, nil
}

// ListByCreator returns the jobs posted by one recruiter, newest-first.
func (s *JobService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching jobs", err)
	}
	return jobs, nil
}

// GetByID fetches one job and expands its applications. Losing the
// applications to a secondary lookup failure never withholds the job
// itself; the list just comes back empty.
func (s *JobService) GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error while fetching job details", err)
	}

	applications := []models.Application{}
	if err := s.DB.WithContext(ctx).Where("job_id = ?", jobID).Find(&applications).Error; err != nil {
		s.Log.Warn().Err(err).Str("job", jobID.String()).Msg("expanding applications failed")
		applications = []models.Application{}
	}
	job.Applications = applications
	return &job, nil
}

// Update applies only the fields present and non-zero in the request.
func (s *JobService) Update(ctx context.Context, jobID uuid.UUID, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating job.", err)
	}

	updates := map[string]any{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Requirements != "" {
		updates["requirements"] = pq.StringArray(ParseRequirements(req.Requirements))
	}
	if req.Salary != 0 {
		updates["salary"] = req.Salary
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.JobType != "" {
		updates["job_type"] = req.JobType
	}
	if req.Experience != 0 {
		updates["experience_level"] = req.Experience
	}
	if req.Position != 0 {
		updates["position"] = req.Position
	}
	if req.CompanyID != "" {
		companyID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return nil, apperr.New(apperr.InvalidID, "Invalid company ID format")
		}
		updates["company_id"] = companyID
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&job).Updates(updates).Error; err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Server error while updating job.", err)
		}
	}
	return &job, nil
}

// Delete removes the job and returns the deleted record. Applications
// are left in place; there are no cascade deletes.
func (s *JobService) Delete(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Job not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while deleting job.", err)
	}
	if err := s.DB.WithContext(ctx).Delete(&job).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while deleting job.", err)
	}
	return &job, nil
}
