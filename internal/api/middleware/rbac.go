package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// RequireAdmin rejects callers without the admin role. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if caller == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !caller.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin permits admins, or callers whose id matches the idParam
// path parameter. Must run after Auth.
func RequireSelfOrAdmin(idParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if caller == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			id, err := strconv.ParseUint(c.Param(idParam), 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
			}

			if !caller.IsAdmin() && caller.ID != uint(id) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
