package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_DistinctDigests(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)

	// Fresh salt each call
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("secret", h1))
	assert.True(t, CheckPassword("secret", h2))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong", h))
	assert.False(t, CheckPassword("", h))
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	t.Parallel()

	// A broken stored digest is a plain mismatch, not a panic or an error.
	assert.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
}
