package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAdminToken carries the static shared admin secret.
const HeaderAdminToken = "X-Admin-Token"

// AdminToken guards the /admin surface with an exact-match check of
// the shared token header.
func AdminToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(HeaderAdminToken) != token {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token missing or invalid")
			}
			return next(c)
		}
	}
}
