package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.True(t, VerifyPassword(hash, "Str0ng!pass"))
	assert.False(t, VerifyPassword(hash, "Wr0ng!pass"))
}

func TestHashRefreshRawIsDeterministic(t *testing.T) {
	a := HashRefreshRaw("token-value")
	b := HashRefreshRaw("token-value")
	c := HashRefreshRaw("other-value")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // sha-256 hex
}
