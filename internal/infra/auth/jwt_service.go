package auth

import (
	"strconv"
	"time"

	"areacheck/config"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// IssueAccessToken creates an access token for the given user.
func (s *jwtService) IssueAccessToken(username string, userID int64) (string, error) {
	return s.generateToken(username, userID, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// IssueRefreshToken creates a refresh token for the given user.
func (s *jwtService) IssueRefreshToken(username string, userID int64) (string, error) {
	return s.generateToken(username, userID, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// ParseAccessToken validates an access token and returns its claims.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (s *jwtService) ParseRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// UsernameOf returns the username carried by a valid access token.
func (s *jwtService) UsernameOf(tokenString string) (string, error) {
	claims, err := s.ParseAccessToken(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Username, nil
}

// UserIDOf returns the user id carried by a valid access token.
func (s *jwtService) UserIDOf(tokenString string) (int64, error) {
	claims, err := s.ParseAccessToken(tokenString)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}

// AccessTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(username string, userID int64, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Username: username,
		UserID:   userID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) parseToken(tokenString string, secret []byte, expectedType string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is empty")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &service.Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not valid")
	}
	if claims.Type != expectedType {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type " + strconv.Quote(claims.Type))
	}
	if claims.Username == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no username")
	}

	return claims, nil
}
