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
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Log          zerolog.Logger
}

func NewApplicationHandler(applications *services.ApplicationService, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Log: log}
}

// Apply is GET /api/v1/application/apply/:id where :id is the job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, h.Log, apperr.New(apperr.InvalidID, "Invalid job ID format"))
		return
	}
	applicantID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	if _, err := h.Applications.Apply(c.Request.Context(), jid, applicantID); err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job applied successfully.",
		"success": true,
	})
}

// AppliedJobs is GET /api/v1/application/get: the session user's
// applications with job and company expanded.
func (h *ApplicationHandler) AppliedJobs(c *gin.Context) {
	applicantID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	applications, err := h.Applications.ListForApplicant(c.Request.Context(), applicantID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications, "success": true})
}

// Applicants is GET /api/v1/application/:id/applicants for recruiters.
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	jid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, h.Log, apperr.New(apperr.InvalidID, "Invalid job ID format"))
		return
	}
	job, err := h.Applications.Applicants(c.Request.Context(), jid)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "success": true})
}

// UpdateStatus is POST /api/v1/application/status/:id/update.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	aid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, h.Log, apperr.New(apperr.InvalidID, "Invalid application ID format"))
		return
	}
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "Status is required.")
		return
	}
	application, err := h.Applications.UpdateStatus(c.Request.Context(), aid, req.Status)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated successfully.",
		"application": application,
		"success":     true,
	})
}

// Count is GET /api/v1/application/:id/count.
func (h *ApplicationHandler) Count(c *gin.Context) {
	jid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, h.Log, apperr.New(apperr.InvalidID, "Invalid job ID format"))
		return
	}
	count, err := h.Applications.Count(c.Request.Context(), jid)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count, "success": true})
}
