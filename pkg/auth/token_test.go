package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/pkg/auth"
)

const secret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("owner@example.com", secret)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestExpiredTokenIsDistinct(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email: "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = auth.ParseToken(tokenString, secret)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestInvalidTokens(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ParseToken("not.a.token", secret)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.GenerateToken("owner@example.com", secret)
		require.NoError(t, err)

		_, err = auth.ParseToken(token, "other-secret")
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("missing email claim", func(t *testing.T) {
		anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := anon.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = auth.ParseToken(tokenString, secret)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})
}
