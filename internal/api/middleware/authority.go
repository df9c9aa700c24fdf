package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speech4j/security-service/internal/api/metrics"
)

// AuthorityResolver answers which authorities the authenticated subject carries.
type AuthorityResolver interface {
	Authorities(ctx context.Context, userID string) ([]string, error)
}

// RequireAuthority enforces the authorization overlay after authentication
// has succeeded. A subject lacking the required authority gets a 403, which
// is deliberately distinct from the gate's 401.
func RequireAuthority(resolver AuthorityResolver, required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, _ := c.Get(SubjectKey).(string)
			if subject == "" {
				metrics.AuthorityChecksTotal.WithLabelValues("denied").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			names, err := resolver.Authorities(c.Request().Context(), subject)
			if err != nil {
				// Cannot prove the authority; deny rather than fail open.
				metrics.AuthorityChecksTotal.WithLabelValues("denied").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			for _, name := range names {
				if name == required {
					metrics.AuthorityChecksTotal.WithLabelValues("granted").Inc()
					return next(c)
				}
			}

			metrics.AuthorityChecksTotal.WithLabelValues("denied").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
