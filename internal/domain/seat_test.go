package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatValidStartsUnblocked(t *testing.T) {
	r := NewSeat(uuid.New(), "23", "A", "window seat")
	require.True(t, r.IsSuccess())

	s := r.Value()
	assert.Equal(t, "A23", s.Name().String())
	assert.False(t, s.IsBlocked())
	assert.Equal(t, "window seat", s.Description().String())
}

func TestNewSeatAggregatesAllFieldFailures(t *testing.T) {
	r := NewSeat(uuid.Nil, "", "1", strings.Repeat("x", 256))
	require.True(t, r.IsFailure())

	got := codes(r.Errors())
	assert.Contains(t, got, ErrSeatIDRequired.Code)
	assert.Contains(t, got, ErrSeatNumberRequired.Code)
	assert.Contains(t, got, ErrSeatRowFormat.Code)
	assert.Contains(t, got, ErrDescriptionTooLong.Code)
}

func TestSeatBlockUnblock(t *testing.T) {
	s := NewSeat(uuid.New(), "1", "A", "").Value()

	s.Block()
	assert.True(t, s.IsBlocked())
	s.Unblock()
	assert.False(t, s.IsBlocked())
}

func TestSeatChangeNameFailureLeavesNameIntact(t *testing.T) {
	s := NewSeat(uuid.New(), "1", "A", "").Value()

	res := s.ChangeName("2", "")
	require.True(t, res.IsFailure())
	assert.Equal(t, "A1", s.Name().String())

	require.True(t, s.ChangeName("2", "B").IsSuccess())
	assert.Equal(t, "B2", s.Name().String())
}

func TestRestoreSeatKeepsStoredState(t *testing.T) {
	id := uuid.New()
	name := NewSeatNameFromStrings("7", "C").Value()
	desc := NewDescription("standing desk").Value()

	s := RestoreSeat(id, name, true, desc)
	assert.Equal(t, id, s.ID())
	assert.True(t, s.IsBlocked())
	assert.Equal(t, "C7", s.Name().String())
}

func TestSeatEqualityIsIdentity(t *testing.T) {
	a := NewSeat(uuid.New(), "1", "A", "").Value()
	b := NewSeat(uuid.New(), "1", "A", "").Value()
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}
