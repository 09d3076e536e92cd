package utils_test

import (
	"testing"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := utils.GenerateJWT("alice", secret, time.Hour, "erupee-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "erupee-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("alice", "correct-secret", time.Hour, "erupee-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, err := utils.GenerateJWT("alice", secret, -time.Minute, "erupee-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, utils.CheckPasswordHash("password123", hash))
	assert.False(t, utils.CheckPasswordHash("password124", hash))
}
