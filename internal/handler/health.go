package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness plus a database ping, so orchestrators can
// tell a hung DB pool apart from a healthy process.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		dbStatus := "ok"
		if err := db.PingContext(ctx); err != nil {
			dbStatus = "down"
		}
		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, echo.Map{
			"status": dbStatus,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
