package handler

import (
	"net/http"

	"areacheck/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// setTokenCookie writes a token cookie. A cleared cookie is sent with Max-Age=0.
func setTokenCookie(c echo.Context, tc *entity.TokenCookie) {
	if tc == nil {
		return
	}

	maxAge := tc.MaxAge
	if tc.Cleared() {
		// net/http renders a negative MaxAge as "Max-Age=0"; zero would omit the attribute.
		maxAge = -1
	}

	c.SetCookie(&http.Cookie{
		Name:     tc.Name,
		Value:    tc.Value,
		Path:     tc.Path,
		MaxAge:   maxAge,
		HttpOnly: tc.HTTPOnly,
		Secure:   tc.Secure,
		SameSite: sameSiteMode(tc.SameSite),
	})
}

func sameSiteMode(value string) http.SameSite {
	switch value {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}
