package auth_test

import (
	"testing"
	"time"

	"go-jobportal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundtrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(42, "user@example.com", "JOB_SEEKER")
	assert.NoError(t, err)

	userID, email, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenRejection(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)

	t.Run("Wrong secret", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", time.Hour)
		token, _ := other.Issue(42, "user@example.com", "JOB_SEEKER")

		_, _, err := issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := auth.NewTokenIssuer("secret", -time.Minute)
		token, _ := expired.Issue(42, "user@example.com", "JOB_SEEKER")

		_, _, err := issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("Garbage input", func(t *testing.T) {
		_, _, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})
}
