package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(42, "buyer@example.com", []string{"admin"}, []string{"manage-purchases"})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, []string{"manage-purchases"}, claims.Permissions)
}

func TestJWTManager_RefreshToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken(7)
	require.NoError(t, err)

	userID, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestJWTManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTManager("one", time.Hour, time.Hour)
	verifier := NewJWTManager("two", time.Hour, time.Hour)

	token, err := issuer.GenerateAccessToken(1, "a@b.c", nil, nil)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateProductCode(t *testing.T) {
	code := GenerateProductCode()

	assert.True(t, strings.HasPrefix(code, "PROD-"))
	assert.Len(t, code, len("PROD-")+8)
}
