package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/domain"
)

func runAuthorize(t *testing.T, role string, action domain.Action) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := Authorize(action)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		action  domain.Action
		wantErr bool
	}{
		{"admin creates room", domain.RoleAdmin, domain.ActionRoomCreate, false},
		{"admin manages users", domain.RoleAdmin, domain.ActionUserManage, false},
		{"renter reads rooms", domain.RolePenyewa, domain.ActionRoomRead, false},
		{"renter creates room", domain.RolePenyewa, domain.ActionRoomCreate, true},
		{"renter views report", domain.RolePenyewa, domain.ActionPaymentReport, true},
		{"missing role", "", domain.ActionRoomRead, true},
		{"unknown role", "superuser", domain.ActionRoomRead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runAuthorize(t, tt.role, tt.action)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrForbidden) {
					t.Errorf("err = %v, want ErrForbidden", err)
				}
				return
			}
			if err != nil {
				t.Errorf("err = %v, want nil", err)
			}
		})
	}
}
