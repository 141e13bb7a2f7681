package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := IssueSessionToken(secret, 42, time.Hour)
		require.NoError(t, err)

		userID, err := ParseSessionToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)

		assert.NoError(t, VerifySessionToken(secret, token, 42))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := IssueSessionToken(secret, 42, time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionToken([]byte("other-secret"), token)
		assert.ErrorContains(t, err, "parse session token")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := IssueSessionToken(secret, 42, -time.Minute)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, token)
		assert.ErrorContains(t, err, "parse session token")
	})

	t.Run("subject mismatch is rejected", func(t *testing.T) {
		token, err := IssueSessionToken(secret, 42, time.Hour)
		require.NoError(t, err)

		assert.ErrorContains(t, VerifySessionToken(secret, token, 7), "does not match user")
	})

	t.Run("non-HMAC signing method is rejected", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: "42",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, unsigned)
		assert.Error(t, err)
	})

	t.Run("non-numeric subject is rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(secret)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, token)
		assert.ErrorContains(t, err, "is not a user id")
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseSessionToken(secret, "not.a.token")
		assert.Error(t, err)
	})
}
