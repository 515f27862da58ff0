package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerhive/careerhive/internal/apperr"
)

// fail sends the single error response for a request. Taxonomy errors map
// to their fixed status and message; anything else is logged and surfaces
// as a generic 500 so no stack detail reaches the client.
func fail(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperr.Internal {
			log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		}
		c.JSON(appErr.Kind.Status(), gin.H{"message": appErr.Message, "success": false})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "success": false})
}

// missing flags a boundary-validation failure (absent or malformed
// request fields) with the MissingField kind.
func missing(c *gin.Context, log zerolog.Logger, message string) {
	fail(c, log, apperr.New(apperr.MissingField, message))
}

// HealthCheck reports process liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
