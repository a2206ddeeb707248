package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ironlabs/basic-auth/internal/api/metrics"
	"github.com/ironlabs/basic-auth/internal/api/middleware"
	"github.com/ironlabs/basic-auth/internal/core/ports"
)

// ProfileHandler serves the session-gated profile view and logout.
type ProfileHandler struct {
	authService ports.AuthService
	sessions    ports.SessionManager
	cookies     middleware.CookiePolicy
}

func NewProfileHandler(authService ports.AuthService, sessions ports.SessionManager, cookies middleware.CookiePolicy) *ProfileHandler {
	return &ProfileHandler{authService: authService, sessions: sessions, cookies: cookies}
}

// Profile renders the identity bound to the session. The user record is
// re-fetched on every request; the session holds only the id, so the view
// can never show a stale login-time snapshot.
func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "profile.html", user)
}

// Logout destroys the session, expires the cookie and redirects to the site
// root. A session-store failure is forwarded to the central error handler.
// Requests without a cookie still redirect; there is nothing to destroy.
func (h *ProfileHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.LogoutsTotal.Inc()
	}

	c.SetCookie(h.cookies.Expired())
	return c.Redirect(http.StatusFound, "/")
}
