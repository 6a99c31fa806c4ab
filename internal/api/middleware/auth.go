package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reservabar/reservation-api/internal/api/metrics"
	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "current_user"

// Auth extracts the bearer token, resolves it to an active user through the
// auth service, and injects the user into the request context. The directory
// lookup happens on every request, so deactivation takes effect immediately.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.ResolveBearer(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrInactiveUser):
		return "inactive"
	default:
		return "invalid_token"
	}
}

// CallerFrom returns the user injected by Auth, or nil when the middleware
// did not run.
func CallerFrom(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}
