package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// Characters accepted as the required special character in passwords.
const passwordSpecials = "@#$%^&+=!"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("valid_password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
}

// IsValidEmail checks basic email shape: local part, @, non-empty domain.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPassword enforces the password policy: at least 8 characters
// with no whitespace, containing an upper-case letter, a lower-case
// letter, a digit, and one of the fixed special characters.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
