package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ironlabs/basic-auth/internal/api/metrics"
	"github.com/ironlabs/basic-auth/internal/api/middleware"
	"github.com/ironlabs/basic-auth/internal/core/domain"
	"github.com/ironlabs/basic-auth/internal/core/ports"
)

// User-facing messages for recoverable failures. Nothing beyond these ever
// reaches the form, so internal failure detail cannot leak through them.
const (
	msgSignupMissingFields = "All fields are mandatory. Please provide your username, email and password."
	msgWeakPassword        = "Password needs to have at least 6 chars and must contain at least one number, one lowercase and one uppercase letter."
	msgAccountExists       = "Username and email need to be unique. Either username or email is already used."
	msgLoginMissingFields  = "Please enter both, email and password to login."
	msgUnknownAccount      = "Email is not registered. Try with other email."
	msgIncorrectPassword   = "Incorrect password."
	msgBadSubmission       = "Invalid form submission."
)

// formData feeds the signup and login templates.
type formData struct {
	ErrorMessage string
	Username     string
	Email        string
}

// AuthHandler serves the signup and login forms and their submissions.
type AuthHandler struct {
	authService ports.AuthService
	cookies     middleware.CookiePolicy
}

func NewAuthHandler(authService ports.AuthService, cookies middleware.CookiePolicy) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type signupRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SignupForm renders the empty signup form.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", formData{})
}

// Signup creates the account and redirects to the login form. Recoverable
// failures re-render the form with a message; anything else goes to the
// central error handler.
func (h *AuthHandler) Signup(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.AuthRequestDuration.WithLabelValues("signup").Observe(time.Since(start).Seconds())
	}()

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		return c.Render(http.StatusBadRequest, "signup.html", formData{ErrorMessage: msgBadSubmission})
	}

	_, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		data := formData{Username: req.Username, Email: req.Email}
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			data.ErrorMessage = msgSignupMissingFields
			return c.Render(http.StatusBadRequest, "signup.html", data)
		case errors.Is(err, domain.ErrWeakPassword):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			data.ErrorMessage = msgWeakPassword
			return c.Render(http.StatusBadRequest, "signup.html", data)
		case errors.Is(err, domain.ErrUserExists):
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			data.ErrorMessage = msgAccountExists
			return c.Render(http.StatusConflict, "signup.html", data)
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the empty login form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", formData{})
}

// Login verifies the credentials, sets the session cookie and redirects to
// the profile. Unknown email and wrong password stay distinct outcomes.
func (h *AuthHandler) Login(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.AuthRequestDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	}()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return c.Render(http.StatusBadRequest, "login.html", formData{ErrorMessage: msgBadSubmission})
	}

	sessionID, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		data := formData{Email: req.Email}
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			data.ErrorMessage = msgLoginMissingFields
			return c.Render(http.StatusBadRequest, "login.html", data)
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("unknown_account").Inc()
			data.ErrorMessage = msgUnknownAccount
			return c.Render(http.StatusUnauthorized, "login.html", data)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			data.ErrorMessage = msgIncorrectPassword
			return c.Render(http.StatusUnauthorized, "login.html", data)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(h.cookies.Cookie(sessionID))
	return c.Redirect(http.StatusFound, "/profile")
}
