package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both claims must be present, since
// every core operation is keyed on the principal.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{UserID: userID, Role: role}, nil
}
