package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"uid"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed, expiring identity tokens.
// Tokens are stateless: a token stays valid until its embedded expiry.
// Every validation failure is reported as domain ErrInvalidToken.
type TokenService interface {
	// IssueAccessToken mints a short-lived access token.
	IssueAccessToken(username string, userID int64) (string, error)

	// IssueRefreshToken mints a long-lived refresh token.
	IssueRefreshToken(username string, userID int64) (string, error)

	// ParseAccessToken validates an access token and returns its claims.
	ParseAccessToken(token string) (*Claims, error)

	// ParseRefreshToken validates a refresh token and returns its claims.
	ParseRefreshToken(token string) (*Claims, error)

	// UsernameOf returns the username embedded in a valid access token.
	UsernameOf(token string) (string, error)

	// UserIDOf returns the user id embedded in a valid access token.
	UserIDOf(token string) (int64, error)

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
