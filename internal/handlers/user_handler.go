package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/apperr"
	"github.com/careerhive/careerhive/internal/auth"
	"github.com/careerhive/careerhive/internal/dtos"
	"github.com/careerhive/careerhive/internal/services"
	"github.com/careerhive/careerhive/internal/storage"
)

type UserHandler struct {
	Users        *services.UserService
	Tokens       *auth.TokenIssuer
	Uploader     storage.Uploader
	CookieMaxAge int
	Log          zerolog.Logger
}

func NewUserHandler(users *services.UserService, tokens *auth.TokenIssuer, up storage.Uploader, cookieMaxAge int, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		Users:        users,
		Tokens:       tokens,
		Uploader:     up,
		CookieMaxAge: cookieMaxAge,
		Log:          log,
	}
}

// uploadFile forwards an optional multipart file to the object-storage
// collaborator and returns its public URL, or "" when no file was sent.
func (h *UserHandler) uploadFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || h.Uploader == nil {
		return "", nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Failed to read uploaded file.", err)
	}
	defer file.Close()

	url, err := h.Uploader.Upload(ctx, file, fileHeader.Filename)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Failed to upload file.", err)
	}
	return url, nil
}

// Register is POST /api/v1/user/register (multipart).
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		missing(c, h.Log, "Something is missing")
		return
	}

	fileHeader, _ := c.FormFile("file")
	photoURL, err := h.uploadFile(c.Request.Context(), fileHeader)
	if err != nil {
		fail(c, h.Log, err)
		return
	}

	if _, err := h.Users.Register(c.Request.Context(), &req, photoURL); err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"success": true,
	})
}

// Login is POST /api/v1/user/login. On success the session token and the
// user id travel back as httpOnly cookies and the token is also embedded
// in the user record.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missing(c, h.Log, "Something is missing")
		return
	}

	user, err := h.Users.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		fail(c, h.Log, apperr.Wrap(apperr.Internal, "Failed to generate token.", err))
		return
	}
	user.Token = token

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.TokenCookie, token, h.CookieMaxAge, "/", "", true, true)
	c.SetCookie("userId", user.ID.String(), h.CookieMaxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back %s", user.FullName),
		"user":    user,
		"success": true,
	})
}

// Logout is GET /api/v1/user/logout; it clears the token cookie.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully.",
		"success": true,
	})
}

// UpdateProfile is POST /api/v1/user/profile/update (multipart). Only the
// fields actually provided are merged; an uploaded file replaces the
// stored résumé.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		fail(c, h.Log, apperr.New(apperr.Unauthorized, "User not authenticated."))
		return
	}

	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		missing(c, h.Log, "Something is missing")
		return
	}

	upd := services.ProfileUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
	}

	fileHeader, _ := c.FormFile("file")
	if fileHeader != nil {
		url, err := h.uploadFile(c.Request.Context(), fileHeader)
		if err != nil {
			fail(c, h.Log, err)
			return
		}
		upd.ResumeURL = url
		upd.ResumeOriginal = fileHeader.Filename
	}

	user, err := h.Users.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"user":    user,
		"success": true,
	})
}
