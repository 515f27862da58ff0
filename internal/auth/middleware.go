package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrNoToken is returned when a request carries no credential at all.
var ErrNoToken = errors.New("no token supplied")

// TokenCookie is the cookie carrying the session token on the job-board
// surface; the resume builder uses an Authorization bearer header.
const TokenCookie = "token"

const contextUserKey = "authUserID"

func reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "User not authenticated.",
		"success": false,
	})
}

// RequireCookie gates a route on a valid session token cookie and stores
// the authenticated user id in the request context.
func RequireCookie(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			reject(c)
			return
		}
		userID, err := issuer.Verify(tokenString)
		if err != nil {
			reject(c)
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// RequireBearer gates a route on a valid "Authorization: Bearer <token>"
// header.
func RequireBearer(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := BearerUserID(c, issuer)
		if err != nil {
			reject(c)
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// BearerUserID extracts and verifies the bearer token without aborting,
// for endpoints where authentication is optional.
func BearerUserID(c *gin.Context, issuer *TokenIssuer) (uuid.UUID, error) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return uuid.Nil, ErrNoToken
	}
	return issuer.Verify(tokenString)
}

// UserID returns the authenticated user id stored by the gate middleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
