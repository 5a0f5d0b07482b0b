package entity

// Cookie names used to carry tokens to the browser.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// TokenCookie describes a token cookie independently of any HTTP library.
// MaxAge is in seconds; zero tells the client to delete the cookie.
type TokenCookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int
	HTTPOnly bool
	Secure   bool
	SameSite string // "none", "lax" or "strict"
}

// Cleared reports whether the cookie is a deletion signal.
func (c *TokenCookie) Cleared() bool {
	return c.MaxAge <= 0
}
