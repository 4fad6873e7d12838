package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordValid(t *testing.T) {
	r := NewPassword("Str0ng!pass")
	require.True(t, r.IsSuccess())
	assert.Equal(t, "Str0ng!pass", r.Value().String())
}

func TestNewPasswordMissingClasses(t *testing.T) {
	cases := []struct {
		raw  string
		want Error
	}{
		{"lower0nly!pass", ErrPasswordNoUpper},
		{"UPPER0NLY!PASS", ErrPasswordNoLower},
		{"NoDigits!here", ErrPasswordNoDigit},
		{"NoSpecial0here", ErrPasswordNoSpecial},
	}
	for _, tc := range cases {
		r := NewPassword(tc.raw)
		require.True(t, r.IsFailure(), tc.raw)
		got := codes(r.Errors())
		assert.Contains(t, got, tc.want.Code, tc.raw)
		assert.Len(t, got, 1, tc.raw)
	}
}

func TestNewPasswordShortAndWeakAggregates(t *testing.T) {
	r := NewPassword("abc")
	require.True(t, r.IsFailure())
	got := codes(r.Errors())
	assert.Contains(t, got, ErrPasswordTooShort.Code)
	assert.Contains(t, got, ErrPasswordNoUpper.Code)
	assert.Contains(t, got, ErrPasswordNoDigit.Code)
	assert.Contains(t, got, ErrPasswordNoSpecial.Code)
}

func TestNewPasswordTooLong(t *testing.T) {
	raw := "Aa1!" + strings.Repeat("x", 100)
	r := NewPassword(raw)
	require.True(t, r.IsFailure())
	assert.Equal(t, []string{ErrPasswordTooLong.Code}, codes(r.Errors()))
}
