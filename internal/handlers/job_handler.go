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

type JobHandler struct {
	Jobs *services.JobService
	Log  zerolog.Logger
}

func NewJobHandler(jobs *services.JobService, log zerolog.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, Log: log}
}

// jobID validates the :id path parameter before any store access.
func jobID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidID, "Invalid job ID format")
	}
	return id, nil
}

// Create is POST /api/v1/job/post.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "Please fill all the fields.")
		return
	}

	creatorID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req, creatorID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New job created successfully.",
		"job":     job,
		"success": true,
	})
}

// List is GET /api/v1/job/get?keyword=. An absent or empty keyword
// matches every job.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "success": true})
}

// AdminJobs is GET /api/v1/job/getadminjobs: the session user's posts.
func (h *JobHandler) AdminJobs(c *gin.Context) {
	creatorID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	jobs, err := h.Jobs.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "success": true})
}

// GetByID is GET /api/v1/job/get/:id.
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	job, err := h.Jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "success": true})
}

// Update is PUT /api/v1/job/update/:id, a partial update.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "Invalid request body.")
		return
	}
	job, err := h.Jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully.",
		"job":     job,
		"success": true,
	})
}

// Delete is DELETE /api/v1/job/delete/:id; it returns the deleted record.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	job, err := h.Jobs.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully.",
		"job":     job,
		"success": true,
	})
}
