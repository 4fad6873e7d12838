// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/handler"
	"github.com/iliyamo/coworking-reservation/internal/middleware"
)

// Handlers bundles every handler the route table needs.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Seats        *handler.SeatHandler
	Reservations *handler.ReservationHandler
}

// Register sets up the full route table.
//
//	/healthz                        liveness + DB ping
//	/v1/auth/*                      register, login, refresh, logout
//	/v1/*                           authenticated member + admin routes
//	/v1/admin/seats/*               seat administration (ADMIN only)
func Register(e *echo.Echo, db *sql.DB, h Handlers, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health(db))

	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	// Logout accepts either a refresh token in the body or a bearer
	// token, so it stays outside the JWT group.
	auth.POST("/logout", h.Auth.Logout)

	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole("ADMIN", "MEMBER"))

	v1.GET("/me", h.Users.Me)
	v1.PATCH("/me/name", h.Users.ChangeName)
	v1.PATCH("/me/email", h.Users.ChangeEmail)
	v1.PATCH("/me/password", h.Users.ChangePassword)

	// Seat browsing is open to every authenticated role; the floor
	// plan changes rarely, so listings go through the response cache.
	v1.GET("/seats", h.Seats.List, cache)
	v1.GET("/seats/:id", h.Seats.Get)

	v1.POST("/reservations", h.Reservations.Create)
	v1.GET("/reservations", h.Reservations.ListMine)
	v1.GET("/reservations/:id", h.Reservations.Get)
	v1.PATCH("/reservations/:id", h.Reservations.Update)
	v1.DELETE("/reservations/:id", h.Reservations.Delete)

	admin := e.Group("/v1/admin/seats")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("", h.Seats.Create)
	admin.PATCH("/:id", h.Seats.Update)
	admin.POST("/:id/block", h.Seats.Block)
	admin.POST("/:id/unblock", h.Seats.Unblock)
	admin.DELETE("/:id", h.Seats.Delete)
}
