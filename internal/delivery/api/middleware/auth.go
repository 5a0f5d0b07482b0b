package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "areacheck/internal/delivery/context"
	"areacheck/internal/domain/entity"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from the access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token from the access_token cookie or a Bearer header
// and stores the caller's identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractAccessToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidToken, "authenticate")
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Username)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", claims.UserID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// extractAccessToken prefers the Authorization header; browsers fall back to the cookie.
func extractAccessToken(c echo.Context) (string, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return "", errors.Wrap(domainerrors.ErrInvalidToken, "authorization header must be a Bearer token")
		}

		return tokenString, nil
	}

	cookie, err := c.Cookie(entity.AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidToken, "access token is missing")
	}

	return cookie.Value, nil
}
