package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// Authorize gates a route on the central authorization policy. Services
// consult the same table again before touching the store; this middleware
// just rejects early so denied requests never reach a handler.
func Authorize(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Allowed(role, action) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
