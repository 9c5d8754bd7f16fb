package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "inventory-management-app"
)

func TestGenerateJWT_AndParse(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", false, testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.False(t, claims.IsRefreshToken)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerateJWT_RefreshMarker(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", true, testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", false, testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", false, testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := ParseAndValidateJWT("definitely.not.ajwt", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
