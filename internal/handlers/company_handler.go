package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/services"
	"github.com/careerhive/careerhive/internal/storage"
)

type CompanyHandler struct {
	Companies *services.CompanyService
	Uploader  storage.Uploader
	Log       zerolog.Logger
}

func NewCompanyHandler(companies *services.CompanyService, up storage.Uploader, log zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Uploader: up, Log: log}
}

func companyID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidID, "Invalid company ID format")
	}
	return id, nil
}

// Register is POST /api/v1/company/register.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.CompanyRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "Company name is required.")
		return
	}
	ownerID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	company, err := h.Companies.Register(c.Request.Context(), req.Name, ownerID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully.",
		"company": company,
		"success": true,
	})
}

// List is GET /api/v1/company/get: companies owned by the session user.
func (h *CompanyHandler) List(c *gin.Context) {
	ownerID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	companies, err := h.Companies.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies, "success": true})
}

// GetByID is GET /api/v1/company/get/:id.
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := companyID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	company, err := h.Companies.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company, "success": true})
}

// Update is PUT /api/v1/company/update/:id (multipart, optional logo).
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := companyID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		missing(c, h.Log, "Invalid request body.")
		return
	}

	var logoURL string
	if fileHeader, _ := c.FormFile("file"); fileHeader != nil && h.Uploader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			fail(c, h.Log, apperr.Wrap(apperr.Internal, "Failed to read uploaded file.", err))
			return
		}
		logoURL, err = h.Uploader.Upload(c.Request.Context(), file, fileHeader.Filename)
		file.Close()
		if err != nil {
			fail(c, h.Log, apperr.Wrap(apperr.Internal, "Failed to upload file.", err))
			return
		}
	}

	company, err := h.Companies.Update(c.Request.Context(), id, &req, logoURL)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company information updated.",
		"company": company,
		"success": true,
	})
}

// Delete is DELETE /api/v1/company/delete/:id.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := companyID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	company, err := h.Companies.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company deleted successfully.",
		"company": company,
		"success": true,
	})
}
