package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tokens := auth.NewTokenManager("secret", "dsp-backoffice", time.Hour).WithClock(func() time.Time { return now })

	token, session, err := tokens.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now, session.IssuedAt)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	validated, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, validated.ID)
	assert.Equal(t, auth.AdminSubject, validated.Subject)
	assert.Equal(t, session.ExpiresAt, validated.ExpiresAt)
}

func TestTokenManager_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := now
	tokens := auth.NewTokenManager("secret", "dsp-backoffice", time.Hour).WithClock(func() time.Time { return clock })

	token, _, err := tokens.Issue()
	require.NoError(t, err)

	clock = now.Add(2 * time.Hour)
	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenManager_Rejects(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "dsp-backoffice", time.Hour)

	t.Run("other secret", func(t *testing.T) {
		other := auth.NewTokenManager("another", "dsp-backoffice", time.Hour)
		token, _, err := other.Issue()
		require.NoError(t, err)
		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := auth.NewTokenManager("secret", "someone-else", time.Hour)
		token, _, err := other.Issue()
		require.NoError(t, err)
		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   auth.AdminSubject,
			Issuer:    "dsp-backoffice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Validate("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := auth.NewTokenManager("", "", time.Hour)
		_, _, err := empty.Issue()
		assert.ErrorIs(t, err, auth.ErrNotConfigured)
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("abolladura")
	require.NoError(t, err)

	assert.NoError(t, auth.CheckPassword(hash, "abolladura"))
	assert.ErrorIs(t, auth.CheckPassword(hash, "Abolladura"), auth.ErrInvalidPassword)
	assert.ErrorIs(t, auth.CheckPassword("", "abolladura"), auth.ErrNotConfigured)
}
