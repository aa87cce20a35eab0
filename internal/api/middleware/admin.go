package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Admin allows the request through only when the authenticated email matches
// the configured admin identity. Must run after Auth, which sets the claim.
func Admin(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" || email != adminEmail {
				return echo.NewHTTPError(http.StatusForbidden, "Acceso solo para administradores")
			}
			return next(c)
		}
	}
}
