package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ironlabs/basic-auth/internal/api/middleware"
	"github.com/ironlabs/basic-auth/internal/core/domain"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn   func(ctx context.Context, email, password string) (string, *domain.User, error)
	profileFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

// stubRenderer records which view was rendered and echoes the data as JSON so
// tests can assert on the message without parsing HTML.
type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	payload, err := json.Marshal(map[string]interface{}{"view": name, "data": data})
	if err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = stubRenderer{}
	return e
}

func formContext(e *echo.Echo, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testCookiePolicy() middleware.CookiePolicy {
	return middleware.NewCookiePolicy("development", time.Minute)
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(_ context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" || password != "Abc123" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: "1", Username: username, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub, testCookiePolicy())

	c, rec := formContext(e, http.MethodPost, "/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"Abc123"},
	})

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAuthHandler_Signup_RecoverableErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, msgSignupMissingFields},
		{"weak password", domain.ErrWeakPassword, http.StatusBadRequest, msgWeakPassword},
		{"duplicate", domain.ErrUserExists, http.StatusConflict, msgAccountExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				signupFn: func(context.Context, string, string, string) (*domain.User, error) {
					return nil, tc.err
				},
			}
			h := NewAuthHandler(stub, testCookiePolicy())

			c, rec := formContext(e, http.MethodPost, "/signup", url.Values{"username": {"x"}})
			if err := h.Signup(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "signup.html") {
				t.Fatalf("expected the signup form to be re-rendered: %s", rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Fatalf("expected message %q in %s", tc.wantMsg, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Signup_UnexpectedErrorPropagates(t *testing.T) {
	e := newTestEcho()
	boom := context.DeadlineExceeded
	stub := &stubAuthService{
		signupFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, boom
		},
	}
	h := NewAuthHandler(stub, testCookiePolicy())

	c, _ := formContext(e, http.MethodPost, "/signup", url.Values{"username": {"x"}})
	if err := h.Signup(c); err != boom {
		t.Fatalf("expected the error to propagate to the central handler, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "Abc123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "sess-1", &domain.User{ID: "1", Username: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub, testCookiePolicy())

	c, rec := formContext(e, http.MethodPost, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"Abc123"},
	})

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/profile" {
		t.Fatalf("expected redirect to /profile, got %q", loc)
	}

	res := rec.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "sess-1" {
		t.Fatalf("cookie carries %q, want the session id", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != 60 {
		t.Fatalf("expected MaxAge 60, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_RecoverableErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, msgLoginMissingFields},
		{"unknown account", domain.ErrUserNotFound, http.StatusUnauthorized, msgUnknownAccount},
		{"wrong password", domain.ErrInvalidCredentials, http.StatusUnauthorized, msgIncorrectPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				loginFn: func(context.Context, string, string) (string, *domain.User, error) {
					return "", nil, tc.err
				},
			}
			h := NewAuthHandler(stub, testCookiePolicy())

			c, rec := formContext(e, http.MethodPost, "/login", url.Values{"email": {"x"}})
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "login.html") {
				t.Fatalf("expected the login form to be re-rendered: %s", rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Fatalf("expected message %q in %s", tc.wantMsg, rec.Body.String())
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatalf("no cookie may be set on a failed login")
			}
		})
	}
}

func TestAuthHandler_Forms(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, testCookiePolicy())

	c, rec := formContext(e, http.MethodGet, "/signup", nil)
	if err := h.SignupForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "signup.html") {
		t.Fatalf("unexpected signup form response: %d %s", rec.Code, rec.Body.String())
	}

	c, rec = formContext(e, http.MethodGet, "/login", nil)
	if err := h.LoginForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "login.html") {
		t.Fatalf("unexpected login form response: %d %s", rec.Code, rec.Body.String())
	}
}
