package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codes extracts the error codes of a failure for containment checks.
func codes(errs []Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestNewEmailValid(t *testing.T) {
	r := NewEmail("dana@example.com")
	require.True(t, r.IsSuccess())
	assert.Equal(t, "dana@example.com", r.Value().String())
}

func TestNewEmailEmptyReportsEveryFailingCheck(t *testing.T) {
	r := NewEmail("")
	require.True(t, r.IsFailure())
	got := codes(r.Errors())
	assert.Contains(t, got, ErrEmailRequired.Code)
	assert.Contains(t, got, ErrEmailTooShort.Code)
	assert.Contains(t, got, ErrEmailFormat.Code)
	assert.NotContains(t, got, ErrEmailTooLong.Code)
}

func TestNewEmailFormat(t *testing.T) {
	for _, raw := range []string{"not-an-email", "a@b", "a b@example.com", "@example.com"} {
		r := NewEmail(raw)
		require.True(t, r.IsFailure(), raw)
		assert.Contains(t, codes(r.Errors()), ErrEmailFormat.Code, raw)
	}
}

func TestNewEmailTooLong(t *testing.T) {
	raw := strings.Repeat("a", 95) + "@ex.com" // 102 chars
	r := NewEmail(raw)
	require.True(t, r.IsFailure())
	assert.Contains(t, codes(r.Errors()), ErrEmailTooLong.Code)
}
