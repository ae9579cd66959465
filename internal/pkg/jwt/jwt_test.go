//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"booking-console/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	service := jwt.NewService("secret", time.Hour, 24*time.Hour)

	t.Run("reads expiry without the signing key", func(t *testing.T) {
		token, err := service.GenerateAccessToken(7)
		require.NoError(t, err)

		claims, err := jwt.Inspect(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, int64(7), claims.UserID)

		exp, ok := jwt.ExpiresAt(token)
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
	})

	t.Run("opaque token has no expiry", func(t *testing.T) {
		_, ok := jwt.ExpiresAt("not-a-jwt")
		assert.False(t, ok)

		_, err := jwt.Inspect("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestValidateToken(t *testing.T) {
	service := jwt.NewService("secret", time.Hour, 24*time.Hour)

	t.Run("round trip refresh token", func(t *testing.T) {
		token, err := service.GenerateRefreshToken(3)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("foreign signature is rejected", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken(3)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := jwt.NewService("secret", -time.Minute, time.Hour)
		token, err := short.GenerateAccessToken(3)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
