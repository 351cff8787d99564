package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)
	m.now = func() time.Time { return time.Now().UTC().Add(-time.Hour) }

	token, err := m.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)
	other := NewJWTManager("other-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}
