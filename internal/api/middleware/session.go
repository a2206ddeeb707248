package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ironlabs/basic-auth/internal/api/metrics"
	"github.com/ironlabs/basic-auth/internal/core/domain"
	"github.com/ironlabs/basic-auth/internal/core/ports"
)

// UserIDKey is the echo context key under which the session middleware stores
// the authenticated user's id.
const UserIDKey = "user_id"

// Session gates a route on a live session. It resolves the cookie through the
// session manager (sliding the expiry forward), injects the bound user id
// into the context and re-issues the cookie with a fresh MaxAge. Requests
// without a live session are sent to the login form.
func Session(sessions ports.SessionManager, cookies CookiePolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionTouchesTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}

			userID, err := sessions.Touch(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrNotAuthenticated) {
					metrics.SessionTouchesTotal.WithLabelValues("unauthenticated").Inc()
					c.SetCookie(cookies.Expired())
					return c.Redirect(http.StatusFound, "/login")
				}
				return err
			}

			metrics.SessionTouchesTotal.WithLabelValues("ok").Inc()
			c.Set(UserIDKey, userID)
			c.SetCookie(cookies.Cookie(cookie.Value))

			return next(c)
		}
	}
}
