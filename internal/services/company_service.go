package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Register creates a company owned by the session user. Names are
// globally unique.
func (s *CompanyService) Register(ctx context.Context, name string, ownerID uuid.UUID) (*models.Company, error) {
	var existing models.Company
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, apperr.New(apperr.Duplicate, "You can't register same company.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Server error while registering company.", err)
	}

	company := &models.Company{Name: name, UserID: ownerID}
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while registering company.", err)
	}
	return company, nil
}

// ListByOwner returns the session user's companies.
func (s *CompanyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Company, error) {
	companies := []models.Company{}
	err := s.DB.WithContext(ctx).Where("user_id = ?", ownerID).Find(&companies).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching companies.", err)
	}
	return companies, nil
}

func (s *CompanyService) GetByID(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Company not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while fetching company.", err)
	}
	return &company, nil
}

// Update merges only provided fields; logoURL is the upload result, empty
// when no file was sent.
func (s *CompanyService) Update(ctx context.Context, companyID uuid.UUID, req *dtos.CompanyUpdateRequest, logoURL string) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Company not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating company.", err)
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Location != "" {
		company.Location = req.Location
	}
	if logoURL != "" {
		company.Logo = logoURL
	}

	if err := s.DB.WithContext(ctx).Save(&company).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while updating company.", err)
	}
	return &company, nil
}

// Delete removes the company and returns the deleted record.
func (s *CompanyService) Delete(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Company not found.")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while deleting company.", err)
	}
	if err := s.DB.WithContext(ctx).Delete(&company).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error while deleting company.", err)
	}
	return &company, nil
}
