package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialsFromStringsAggregatesBothFields(t *testing.T) {
	r := NewCredentialsFromStrings("nope", "weak")
	require.True(t, r.IsFailure())
	got := codes(r.Errors())
	assert.Contains(t, got, ErrEmailFormat.Code)
	assert.Contains(t, got, ErrPasswordTooShort.Code)
}

func TestCredentialsAccessors(t *testing.T) {
	r := NewCredentialsFromStrings("dana@example.com", "Str0ng!pass")
	require.True(t, r.IsSuccess())
	c := r.Value()
	assert.Equal(t, "dana@example.com", c.Email().String())
	assert.Equal(t, "Str0ng!pass", c.Password().String())
	assert.Equal(t, "dana@example.com Str0ng!pass", c.String())
}
