package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatNameFromStringsAggregatesBothParts(t *testing.T) {
	r := NewSeatNameFromStrings("12a", "")
	require.True(t, r.IsFailure())
	got := codes(r.Errors())
	assert.Contains(t, got, ErrSeatNumberFormat.Code)
	assert.Contains(t, got, ErrSeatRowRequired.Code)
}

func TestSeatNameCanonicalForm(t *testing.T) {
	r := NewSeatNameFromStrings("23", "A")
	require.True(t, r.IsSuccess())
	name := r.Value()
	assert.Equal(t, "A23", name.String())
	assert.Equal(t, "A", name.Row().String())
	assert.Equal(t, "23", name.Number().String())
}

func TestParseSeatNameRoundTrip(t *testing.T) {
	for _, raw := range []string{"A1", "B23", "AA7", "zz100"} {
		r := ParseSeatName(raw)
		require.True(t, r.IsSuccess(), raw)
		assert.Equal(t, raw, r.Value().String(), raw)
	}
}

func TestParseSeatNameMalformed(t *testing.T) {
	for _, raw := range []string{"", "23A", "A", "12", "A-1", "A 1"} {
		r := ParseSeatName(raw)
		require.True(t, r.IsFailure(), raw)
		assert.Equal(t, []string{ErrSeatNameFormat.Code}, codes(r.Errors()), raw)
	}
}
