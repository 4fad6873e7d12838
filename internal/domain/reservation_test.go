package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailability backs the availability predicate with an in-memory
// set of (seat, day) slots.
type fakeAvailability struct {
	taken map[string]bool
	err   error
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{taken: map[string]bool{}}
}

func (f *fakeAvailability) book(seatID uuid.UUID, date Date) {
	f.taken[seatID.String()+"|"+date.String()] = true
}

func (f *fakeAvailability) IsSeatAvailable(_ context.Context, seatID uuid.UUID, date Date) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.taken[seatID.String()+"|"+date.String()], nil
}

func TestNewReservationValid(t *testing.T) {
	seats := newFakeAvailability()
	id, userID, seatID := uuid.New(), uuid.New(), uuid.New()
	date := ParseDate("2026-09-10").Value()

	r := NewReservation(context.Background(), id, userID, seatID, date, seats)
	require.True(t, r.IsSuccess())

	res := r.Value()
	assert.Equal(t, id, res.ID())
	assert.Equal(t, userID, res.UserID())
	assert.Equal(t, seatID, res.SeatID())
	assert.True(t, date.Equal(res.Date()))
}

func TestNewReservationAggregatesReferenceFailures(t *testing.T) {
	seats := newFakeAvailability()
	date := ParseDate("2026-09-10").Value()

	r := NewReservation(context.Background(), uuid.Nil, uuid.Nil, uuid.Nil, date, seats)
	require.True(t, r.IsFailure())
	got := codes(r.Errors())
	assert.Contains(t, got, ErrReservationIDRequired.Code)
	assert.Contains(t, got, ErrReservationUserRequired.Code)
	assert.Contains(t, got, ErrReservationSeatRequired.Code)
}

func TestNewReservationConflictOnSameSeatAndDay(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	date := ParseDate("2026-09-10").Value()
	seats.book(seatID, date)

	r := NewReservation(context.Background(), uuid.New(), uuid.New(), seatID, date, seats)
	require.True(t, r.IsFailure())
	assert.Equal(t, "seat.not_available", r.FirstError().Code)
	assert.Equal(t, CategoryConflict, r.FirstError().Category)
}

func TestNewReservationSameSeatDifferentDayIsFree(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	seats.book(seatID, ParseDate("2026-09-10").Value())

	r := NewReservation(context.Background(), uuid.New(), uuid.New(), seatID,
		ParseDate("2026-09-11").Value(), seats)
	assert.True(t, r.IsSuccess())
}

func TestNewReservationAvailabilityCheckNotRunOnInvalidInput(t *testing.T) {
	seats := newFakeAvailability()
	seats.err = errors.New("must not be called")
	date := ParseDate("2026-09-10").Value()

	r := NewReservation(context.Background(), uuid.Nil, uuid.New(), uuid.New(), date, seats)
	require.True(t, r.IsFailure())
	// Reference failure, not the availability error.
	assert.Equal(t, ErrReservationIDRequired.Code, r.FirstError().Code)
}

func TestNewReservationAvailabilityInfrastructureFailure(t *testing.T) {
	seats := newFakeAvailability()
	seats.err = errors.New("connection refused")
	date := ParseDate("2026-09-10").Value()

	r := NewReservation(context.Background(), uuid.New(), uuid.New(), uuid.New(), date, seats)
	require.True(t, r.IsFailure())
	assert.Equal(t, "seat.availability_check_failed", r.FirstError().Code)
	assert.Equal(t, CategoryException, r.FirstError().Category)
}

func TestChangeDateConflictLeavesReservationIntact(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	original := ParseDate("2026-09-10").Value()
	target := ParseDate("2026-09-11").Value()
	seats.book(seatID, target)

	r := NewReservation(context.Background(), uuid.New(), uuid.New(), seatID, original, seats).Value()

	res := r.ChangeDate(context.Background(), target, seats)
	require.True(t, res.IsFailure())
	assert.Equal(t, "seat.not_available", res.FirstError().Code)
	assert.True(t, original.Equal(r.Date()))
}

func TestChangeDateToSameDayIsNoOp(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	date := ParseDate("2026-09-10").Value()
	r := NewReservation(context.Background(), uuid.New(), uuid.New(), seatID, date, seats).Value()

	// The seat's own booking exists now; moving to the same day must
	// not read as a self-collision.
	seats.book(seatID, date)
	res := r.ChangeDate(context.Background(), date, seats)
	assert.True(t, res.IsSuccess())
}

func TestChangeSeatConflictLeavesReservationIntact(t *testing.T) {
	seats := newFakeAvailability()
	originalSeat, targetSeat := uuid.New(), uuid.New()
	date := ParseDate("2026-09-10").Value()
	seats.book(targetSeat, date)

	r := NewReservation(context.Background(), uuid.New(), uuid.New(), originalSeat, date, seats).Value()

	res := r.ChangeSeat(context.Background(), targetSeat, seats)
	require.True(t, res.IsFailure())
	assert.Equal(t, originalSeat, r.SeatID())

	free := uuid.New()
	require.True(t, r.ChangeSeat(context.Background(), free, seats).IsSuccess())
	assert.Equal(t, free, r.SeatID())
}

func TestChangeSeatToSameSeatIsNoOp(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	date := ParseDate("2026-09-10").Value()
	r := NewReservation(context.Background(), uuid.New(), uuid.New(), seatID, date, seats).Value()

	seats.book(seatID, date)
	assert.True(t, r.ChangeSeat(context.Background(), seatID, seats).IsSuccess())
}

func TestMoveChecksOnlyTheFinalSlot(t *testing.T) {
	seats := newFakeAvailability()
	seat1, seat2 := uuid.New(), uuid.New()
	day1 := ParseDate("2026-09-10").Value()
	day2 := ParseDate("2026-09-11").Value()
	// Both single-field hops collide: seat2 is busy on the current
	// day and the current seat is busy on the target day.  Only the
	// final (seat2, day2) slot is free, and that is the one that
	// counts.
	seats.book(seat2, day1)
	seats.book(seat1, day2)

	r := RestoreReservation(uuid.New(), day1, uuid.New(), seat1)
	res := r.Move(context.Background(), seat2, day2, seats)
	require.True(t, res.IsSuccess())
	assert.Equal(t, seat2, r.SeatID())
	assert.True(t, day2.Equal(r.Date()))
}

func TestMoveConflictLeavesBothFieldsIntact(t *testing.T) {
	seats := newFakeAvailability()
	seat1, seat2 := uuid.New(), uuid.New()
	day1 := ParseDate("2026-09-10").Value()
	day2 := ParseDate("2026-09-11").Value()
	seats.book(seat2, day2)

	r := RestoreReservation(uuid.New(), day1, uuid.New(), seat1)
	res := r.Move(context.Background(), seat2, day2, seats)
	require.True(t, res.IsFailure())
	assert.Equal(t, "seat.not_available", res.FirstError().Code)
	assert.Equal(t, seat1, r.SeatID())
	assert.True(t, day1.Equal(r.Date()))
}

func TestMoveToCurrentSlotIsNoOp(t *testing.T) {
	seats := newFakeAvailability()
	seatID := uuid.New()
	date := ParseDate("2026-09-10").Value()
	r := RestoreReservation(uuid.New(), date, uuid.New(), seatID)

	// The reservation's own booking must not read as a collision.
	seats.book(seatID, date)
	assert.True(t, r.Move(context.Background(), seatID, date, seats).IsSuccess())
}

func TestMoveNilSeatRejected(t *testing.T) {
	seats := newFakeAvailability()
	date := ParseDate("2026-09-10").Value()
	r := RestoreReservation(uuid.New(), date, uuid.New(), uuid.New())

	res := r.Move(context.Background(), uuid.Nil, date, seats)
	require.True(t, res.IsFailure())
	assert.Equal(t, ErrReservationSeatRequired.Code, res.FirstError().Code)
}

func TestChangeUser(t *testing.T) {
	seats := newFakeAvailability()
	date := ParseDate("2026-09-10").Value()
	r := NewReservation(context.Background(), uuid.New(), uuid.New(), uuid.New(), date, seats).Value()

	next := uuid.New()
	require.True(t, r.ChangeUser(next).IsSuccess())
	assert.Equal(t, next, r.UserID())

	res := r.ChangeUser(uuid.Nil)
	require.True(t, res.IsFailure())
	assert.Equal(t, next, r.UserID())
}
