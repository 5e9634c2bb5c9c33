package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens for the safe-location API.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured access token lifetime.
	TokenDuration() time.Duration
}
