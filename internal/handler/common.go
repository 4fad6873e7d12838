// Package handler implements the HTTP endpoints: auth, user profile,
// seat administration and reservations.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dbTimeout = 5 * time.Second

// reqCtx bounds a handler's database work with a timeout derived from
// the request context.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// getUserID extracts the authenticated user's id placed in context by
// the JWT middleware.
func getUserID(c echo.Context) (uuid.UUID, bool) {
	s, ok := c.Get("user_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}
