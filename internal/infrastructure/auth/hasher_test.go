package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify(hash, "s3cret-password"))
	assert.Error(t, hasher.Verify(hash, "wrong-password"))
	assert.Error(t, hasher.Verify("not-a-hash", "s3cret-password"))
}

func TestBcryptPasswordHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt salts must differ per hash")
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
