package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func strPtr(s string) *string { return &s }

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", strPtr("emp-1"), strPtr("company-1"), true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	userID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestGenerateAccessTokenNilClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	// Service accounts carry no employee or company binding.
	token, _, err := svc.GenerateAccessToken("user-2", nil, nil, false)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	employeeID, ok := decoded.Get("employee_id")
	assert.True(t, ok)
	assert.Nil(t, employeeID)

	isAdmin, ok := decoded.Get("is_admin")
	assert.True(t, ok)
	assert.Equal(t, false, isAdmin)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("a-different-secret", "1h")

	token, _, err := other.GenerateAccessToken("user-1", nil, nil, false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(testSecret, "-5m")

	// Generated already expired; skew tolerance is 30s.
	token, _, err := svc.GenerateAccessToken("user-1", nil, nil, false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", nil, nil, false)
	assert.Error(t, err)
}
