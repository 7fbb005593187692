package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[token], nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string, denylist TokenChecker) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, denylist)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, err
}

func TestAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, "Bearer "+token, nil)
	if err != nil {
		t.Fatalf("handler err = %v", err)
	}
	if got := c.Get("user_id"); got != "user-1" {
		t.Errorf("user_id = %v, want user-1", got)
	}
	if got := c.Get("role"); got != "admin" {
		t.Errorf("role = %v, want admin", got)
	}
	if got := c.Get("token"); got != token {
		t.Error("raw token not stored in context")
	}
}

func TestAuthRejects(t *testing.T) {
	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, tc.header, nil)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnauthorized {
				t.Errorf("err = %v, want 401", err)
			}
		})
	}
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	denylist := &stubDenylist{revoked: map[string]bool{token: true}}

	_, err := runAuth(t, "Bearer "+token, denylist)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

// A denylist lookup failure must not lock out valid tokens.
func TestAuthDenylistFailureAdmitsValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	denylist := &stubDenylist{err: context.DeadlineExceeded}

	if _, err := runAuth(t, "Bearer "+token, denylist); err != nil {
		t.Fatalf("handler err = %v, want nil", err)
	}
}
