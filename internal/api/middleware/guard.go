package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

const signInPath = "/auth"

// Decision is the outcome of one guard evaluation.
type Decision struct {
	Allow bool
	// RedirectTo carries the sign-in redirect, with the originally requested
	// path as the return target, when Allow is false.
	RedirectTo string
}

// Decide gates entry to a protected target. Default behavior is a bare
// token-presence check: expiry is deliberately NOT checked, matching the
// shipped storefront. strict switches to ValidateOrLogout, which also denies
// expired sessions and logs them out.
func Decide(ctx context.Context, sessions ports.SessionService, target string, strict bool) Decision {
	allowed := false
	if strict {
		allowed = sessions.ValidateOrLogout(ctx)
	} else {
		_, allowed = sessions.Token(ctx)
	}

	if !allowed {
		return Decision{RedirectTo: signInPath + "?returnUrl=" + target}
	}
	return Decision{Allow: true}
}

// Guard wraps Decide as echo middleware for the admin section. The full
// request URI, query string included, is carried as the return target.
func Guard(sessions ports.SessionService, strict bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := Decide(c.Request().Context(), sessions, c.Request().RequestURI, strict)
			if !d.Allow {
				metrics.GuardDecisionsTotal.WithLabelValues("deny").Inc()
				return c.Redirect(http.StatusFound, d.RedirectTo)
			}
			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}
