package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	token, err := svc.Generate(42, "alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 24).Generate(1, "alice", "staff")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 24).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	token, err := svc.Generate(1, "alice", "staff")
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.Error(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(1, "alice", "staff")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
