package context

import "github.com/labstack/echo/v4"

const (
	// KeyUserID holds the authenticated user's id.
	KeyUserID ContextKey = "user_id"

	// KeyUsername holds the authenticated user's name.
	KeyUsername ContextKey = "username"
)

// SetIdentity stores the caller resolved from the access token.
func SetIdentity(c echo.Context, userID int64, username string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUsername), username)
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(string(KeyUserID)).(int64)

	return userID, ok
}

// GetUsername returns the authenticated user's name.
func GetUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(string(KeyUsername)).(string)

	return username, ok && username != ""
}
