package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoSecret is returned when token operations are attempted without a
// configured signing secret.
var ErrNoSecret = errors.New("signing secret is not configured")

type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a fixed validity
// window. now is swappable for tests.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token asserting the user's identity for the
// configured window.
func (i *TokenIssuer) Issue(userID uuid.UUID) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrNoSecret
	}
	issued := i.now()
	claims := &SessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses the token and returns the embedded user id.
func (i *TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	if len(i.secret) == 0 {
		return uuid.Nil, ErrNoSecret
	}
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}
	return uuid.Parse(claims.UserID)
}

// TTL exposes the configured validity window.
func (i *TokenIssuer) TTL() time.Duration { return i.ttl }
