package middleware

import "github.com/labstack/echo/v4"

// identityKey returns the authenticated user's id from context, or
// "anon" for unauthenticated traffic.  Used to partition rate-limit
// buckets per user.
func identityKey(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return "anon"
}
