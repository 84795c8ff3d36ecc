package validation_test

import (
	"testing"

	"go-jobportal-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co",
		"under_score@x",
	}
	for _, email := range valid {
		assert.True(t, validation.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@missing-local.com",
		"trailing@",
	}
	for _, email := range invalid {
		assert.False(t, validation.IsValidEmail(email), email)
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{
		"Passw0rd!",
		"Str0ng@Pass",
		"aB3#defgh",
	}
	for _, pw := range valid {
		assert.True(t, validation.IsValidPassword(pw), pw)
	}

	invalid := []string{
		"",
		"Sh0rt!a",      // 7 chars
		"alllower1!",   // no upper
		"ALLUPPER1!",   // no lower
		"NoDigits!!",   // no digit
		"NoSpecial1a",  // no special
		"Has Space1!",  // whitespace
		"Tab\tChar1!",  // whitespace
	}
	for _, pw := range invalid {
		assert.False(t, validation.IsValidPassword(pw), pw)
	}
}
