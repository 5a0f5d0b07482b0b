package impl

import (
	"strings"
	"time"

	"areacheck/config"
	"areacheck/internal/domain/entity"
)

const (
	defaultCookiePath     = "/"
	defaultCookieSameSite = "none"
)

// cookieSettings are the attributes shared by both token cookies.
type cookieSettings struct {
	path     string
	sameSite string
	secure   bool
}

func newCookieSettings(cfg *config.Config) cookieSettings {
	settings := cookieSettings{
		path:     defaultCookiePath,
		sameSite: defaultCookieSameSite,
		secure:   true,
	}
	if cfg == nil || cfg.Cookie == nil {
		return settings
	}

	if cfg.Cookie.Path != "" {
		settings.path = cfg.Cookie.Path
	}
	if sameSite := strings.ToLower(strings.TrimSpace(cfg.Cookie.SameSite)); sameSite != "" {
		settings.sameSite = sameSite
	}
	settings.secure = !cfg.Cookie.Insecure

	return settings
}

func (s cookieSettings) token(name, value string, ttl time.Duration) *entity.TokenCookie {
	return &entity.TokenCookie{
		Name:     name,
		Value:    value,
		Path:     s.path,
		MaxAge:   int(ttl / time.Second),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}

// cleared is an empty cookie with MaxAge 0, which tells the client to drop it.
func (s cookieSettings) cleared(name string) *entity.TokenCookie {
	return s.token(name, "", 0)
}
