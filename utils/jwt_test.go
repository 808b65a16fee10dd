package utils

import (
	"testing"
	"time"

	"tripmate/config"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", id)
}

func TestValidateToken_RejectsTampered(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	require.Error(t, err)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestHashToken_IsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
	require.NotEqual(t, h1, HashToken("abd"))
}
