package service

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

// minPasswordLen is the floor of the strength policy: at least 6 characters
// containing one digit, one lowercase and one uppercase letter.
const minPasswordLen = 6

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("strongpw", strongPassword); err != nil {
		panic(err)
	}
	return v
}

type signupCredentials struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,strongpw"`
}

type loginCredentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// ValidateSignup checks field presence and the password strength policy.
// Pure and synchronous; the service performs no I/O before it passes.
func ValidateSignup(username, email, password string) error {
	return credentialsError(validate.Struct(signupCredentials{
		Username: username,
		Email:    email,
		Password: password,
	}))
}

// ValidateLogin checks field presence only; the strength policy applies to
// signup, not login.
func ValidateLogin(email, password string) error {
	return credentialsError(validate.Struct(loginCredentials{
		Email:    email,
		Password: password,
	}))
}

// credentialsError maps validator tag failures onto domain sentinels.
// Presence failures win over strength failures when both occur.
func credentialsError(err error) error {
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	weak := false
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			return domain.ErrMissingFields
		case "strongpw":
			weak = true
		}
	}
	if weak {
		return domain.ErrWeakPassword
	}
	return err
}

func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < minPasswordLen {
		return false
	}
	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return digit && lower && upper
}
