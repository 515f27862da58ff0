package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/models"
	"github.com/careerhive/careerhive/internal/pdf"
	"github.com/careerhive/careerhive/internal/services"
)

// ResumeHandler serves the resume-builder surface: flat paths, bearer
// tokens instead of cookies.
type ResumeHandler struct {
	Resumes *services.ResumeService
	Tokens  *auth.TokenIssuer
	Log     zerolog.Logger
}

func NewResumeHandler(resumes *services.ResumeService, tokens *auth.TokenIssuer, log zerolog.Logger) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes, Tokens: tokens, Log: log}
}

// Signup is POST /signup.
func (h *ResumeHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "All fields are required!")
		return
	}
	if _, err := h.Resumes.Signup(c.Request.Context(), &req); err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful!"})
}

// Login is POST /login; the token travels back in the body for use as a
// bearer header.
func (h *ResumeHandler) Login(c *gin.Context) {
	var req dtos.ResumeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "All fields are required!")
		return
	}
	user, err := h.Resumes.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		fail(c, h.Log, apperr.Wrap(apperr.Internal, "Failed to generate token.", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   token,
		"user":    gin.H{"email": user.Email, "username": user.Username},
	})
}

// UpdateProfile is PUT /update-profile.
func (h *ResumeHandler) UpdateProfile(c *gin.Context) {
	var req dtos.ResumeProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "All fields are required!")
		return
	}
	user, err := h.Resumes.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "user": user})
}

// SubmitResume is POST /resumeSubmit; one draft per account, upserted.
func (h *ResumeHandler) SubmitResume(c *gin.Context) {
	var req dtos.ResumeSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "All fields are required!")
		return
	}
	draft, err := h.Resumes.SubmitDraft(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Resume saved or updated successfully!",
		"resume":  draft,
	})
}

// GetResume is GET /getResume?userEmail=.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	draft, err := h.Resumes.GetDraft(c.Request.Context(), c.Query("userEmail"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// decodePhoto accepts base64 image data with or without a data-URI
// prefix and returns the raw bytes plus the gofpdf image type.
func decodePhoto(encoded string) ([]byte, string, error) {
	imageType := "PNG"
	if rest, ok := strings.CutPrefix(encoded, "data:image/"); ok {
		format, data, found := strings.Cut(rest, ";base64,")
		if !found {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		switch strings.ToLower(format) {
		case "jpeg", "jpg":
			imageType = "JPG"
		case "png":
			imageType = "PNG"
		default:
			return nil, "", fmt.Errorf("unsupported image format %q", format)
		}
		encoded = data
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", err
	}
	return raw, imageType, nil
}

// photoFileName names the photo attached to a stored resume. The raw
// upload is never kept, so the name is synthesized from the applicant.
func photoFileName(firstName, surname, imageType string) string {
	ext := "png"
	if imageType == "JPG" {
		ext = "jpg"
	}
	return fmt.Sprintf("cv_%s_%s.%s", firstName, surname, ext)
}

// GeneratePDF is POST /generate-pdf. The PDF always streams back on
// success; persisting a Resume record happens only when a valid bearer
// token is present and its failure never blocks the download.
func (h *ResumeHandler) GeneratePDF(c *gin.Context) {
	var req dtos.GeneratePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "No data provided for PDF generation")
		return
	}
	if field := req.MissingField(); field != "" {
		missing(c, h.Log, fmt.Sprintf("Missing required field: %s", field))
		return
	}

	data := pdf.ResumeData{
		FirstName:  req.FirstName,
		Surname:    req.Surname,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		Email:      req.Email,
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	}
	if req.Photo != "" {
		raw, imageType, err := decodePhoto(req.Photo)
		if err != nil {
			h.Log.Warn().Err(err).Msg("skipping unusable photo")
		} else {
			data.Photo = raw
			data.PhotoType = imageType
		}
	}

	if userID, err := auth.BearerUserID(c, h.Tokens); err == nil {
		resume := &models.Resume{
			UserID:     userID,
			FirstName:  req.FirstName,
			Surname:    req.Surname,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.Country,
			Phone:      req.Phone,
			Email:      req.Email,
			Summary:    req.Summary,
			Skills:     req.Skills,
			Experience: req.Experience,
			Education:  req.Education,
		}
		if data.Photo != nil {
			resume.PhotoName = photoFileName(req.FirstName, req.Surname, data.PhotoType)
		}
		if err := h.Resumes.SaveGenerated(c.Request.Context(), resume); err != nil {
			h.Log.Error().Err(err).Msg("saving generated resume failed")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Build(&buf, data); err != nil {
		fail(c, h.Log, apperr.Wrap(apperr.Internal, "Error generating PDF", err))
		return
	}

	filename := fmt.Sprintf("cv_%s_%s.pdf", req.FirstName, req.Surname)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ListResumes is GET /resumes (bearer auth).
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}
	resumes, err := h.Resumes.ListGenerated(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumes": resumes})
}
