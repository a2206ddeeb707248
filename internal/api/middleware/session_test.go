package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

type stubSessionManager struct {
	touchFn func(ctx context.Context, sessionID string) (string, error)
}

func (s *stubSessionManager) Start(context.Context, string) (string, error) { return "", nil }

func (s *stubSessionManager) Touch(ctx context.Context, sessionID string) (string, error) {
	return s.touchFn(ctx, sessionID)
}

func (s *stubSessionManager) Destroy(context.Context, string) error { return nil }

func request(withCookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if withCookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: withCookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionMiddleware_LiveSession(t *testing.T) {
	sessions := &stubSessionManager{
		touchFn: func(_ context.Context, sessionID string) (string, error) {
			if sessionID != "sess-1" {
				t.Fatalf("unexpected session id: %s", sessionID)
			}
			return "user-1", nil
		},
	}
	mw := Session(sessions, NewCookiePolicy("development", time.Minute))

	c, rec := request("sess-1")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		if c.Get(UserIDKey) != "user-1" {
			t.Fatalf("user id not injected")
		}
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	// the cookie is re-issued so the browser's MaxAge slides with the session
	var refreshed bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName && ck.Value == "sess-1" && ck.MaxAge == 60 {
			refreshed = true
		}
	}
	if !refreshed {
		t.Fatalf("session cookie not re-issued")
	}
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	sessions := &stubSessionManager{
		touchFn: func(context.Context, string) (string, error) {
			t.Fatalf("touch must not be called without a cookie")
			return "", nil
		},
	}
	mw := Session(sessions, NewCookiePolicy("development", time.Minute))

	c, rec := request("")
	err := mw(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	sessions := &stubSessionManager{
		touchFn: func(context.Context, string) (string, error) {
			return "", domain.ErrNotAuthenticated
		},
	}
	mw := Session(sessions, NewCookiePolicy("development", time.Minute))

	c, rec := request("stale")
	err := mw(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected the stale cookie to be expired")
	}
}

func TestSessionMiddleware_StoreFailurePropagates(t *testing.T) {
	boom := context.DeadlineExceeded
	sessions := &stubSessionManager{
		touchFn: func(context.Context, string) (string, error) { return "", boom },
	}
	mw := Session(sessions, NewCookiePolicy("development", time.Minute))

	c, _ := request("sess-1")
	err := mw(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})(c)

	if err != boom {
		t.Fatalf("expected the store failure to propagate, got %v", err)
	}
}

func TestCookiePolicy_Environments(t *testing.T) {
	dev := NewCookiePolicy("development", time.Minute)
	devCookie := dev.Cookie("id")
	if devCookie.Secure || devCookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("development cookie must be Lax and non-secure: %+v", devCookie)
	}

	prod := NewCookiePolicy("production", time.Minute)
	prodCookie := prod.Cookie("id")
	if !prodCookie.Secure || prodCookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookie must be Secure with SameSite=None: %+v", prodCookie)
	}

	for _, ck := range []*http.Cookie{devCookie, prodCookie} {
		if !ck.HttpOnly {
			t.Fatalf("session cookie must always be HttpOnly")
		}
		if ck.MaxAge != 60 {
			t.Fatalf("expected MaxAge 60, got %d", ck.MaxAge)
		}
	}

	expired := dev.Expired()
	if expired.MaxAge >= 0 || expired.Value != "" {
		t.Fatalf("expired cookie must clear the value: %+v", expired)
	}
}
