package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptionEmptyIsValid(t *testing.T) {
	r := NewDescription("")
	require.True(t, r.IsSuccess())
	assert.True(t, r.Value().IsEmpty())
}

func TestNewDescriptionBoundaries(t *testing.T) {
	require.True(t, NewDescription(strings.Repeat("x", 255)).IsSuccess())

	r := NewDescription(strings.Repeat("x", 256))
	require.True(t, r.IsFailure())
	assert.Equal(t, ErrDescriptionTooLong.Code, r.FirstError().Code)
}
