package utils_test

import (
	"testing"
	"time"

	"washly/utils"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("washly-dev"))
	require.NoError(t, err)
	return signed
}

func TestExtractIDFromToken(t *testing.T) {
	token := signToken(t, "user-7", time.Hour)

	sub, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sub)
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	_, err := utils.ExtractIDFromToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRemainingLife(t *testing.T) {
	token := signToken(t, "user-7", time.Hour)

	ttl, err := utils.TokenRemainingLife(token)
	require.NoError(t, err)
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestTokenRemainingLifeRejectsExpired(t *testing.T) {
	token := signToken(t, "user-7", -time.Hour)

	_, err := utils.TokenRemainingLife(token)
	assert.Error(t, err)
}
