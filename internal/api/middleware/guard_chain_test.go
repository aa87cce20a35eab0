package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/promoplaza/promo-api/internal/core/token"
)

// Exercises the full guard chain the protected routes use: Auth then Admin.
// No token → 401; valid non-admin token → 403; valid admin token → handler.
func TestGuardChain(t *testing.T) {
	const secret = "secret"
	const adminEmail = "admin@promoplaza.com"

	e := echo.New()
	e.POST("/api/promociones", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Auth(secret), Admin(adminEmail))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"expired admin token", "Bearer " + issue(t, secret, adminEmail, -time.Minute), http.StatusUnauthorized},
		{"non-admin token", "Bearer " + issue(t, secret, "ana@x.com", time.Hour), http.StatusForbidden},
		{"admin token", "Bearer " + issue(t, secret, adminEmail, time.Hour), http.StatusOK},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/promociones", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}

func issue(t *testing.T, secret, email string, ttl time.Duration) string {
	t.Helper()
	raw, err := token.Issue(secret, token.Claims{UserID: 1, Email: email}, ttl)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}
