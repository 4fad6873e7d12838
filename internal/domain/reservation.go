package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrReservationIDRequired   = NewError("reservation.id_required", "reservation id must not be empty", CategoryValidation)
	ErrReservationUserRequired = NewError("reservation.user_required", "reservation user must not be empty", CategoryValidation)
	ErrReservationSeatRequired = NewError("reservation.seat_required", "reservation seat must not be empty", CategoryValidation)
	ErrSeatBlocked             = NewError("seat.blocked", "seat is blocked and cannot be reserved", CategoryConflict)
)

// SeatNotAvailable is the conflict raised when a seat already holds a
// reservation for the requested day.
func SeatNotAvailable(seatID uuid.UUID, date Date) Error {
	return NewError("seat.not_available",
		fmt.Sprintf("seat %s is not available on %s", seatID, date), CategoryConflict)
}

// availabilityCheckFailed wraps an infrastructure failure of the
// availability predicate.  It is an internal fault, not user input.
func availabilityCheckFailed(err error) Error {
	return NewError("seat.availability_check_failed",
		"could not determine seat availability: "+err.Error(), CategoryException)
}

// SeatAvailability answers whether a seat is free on a given day.  It
// is backed by the reservation store; the domain treats it as a
// black-box predicate evaluated against committed data.  The unique
// (seat, day) index in the store remains the authoritative backstop
// for races between this check and the commit.
type SeatAvailability interface {
	IsSeatAvailable(ctx context.Context, seatID uuid.UUID, date Date) (bool, error)
}

// Reservation books one seat for one user on one calendar day.  A
// seat holds at most one reservation per day; that invariant is
// checked on creation and re-checked whenever the seat or date
// changes.  There is no cancelled state: deleting the reservation is
// the only terminal transition.
type Reservation struct {
	id     uuid.UUID
	date   Date
	userID uuid.UUID
	seatID uuid.UUID
}

// NewReservation validates the references and the date fail-slow, then
// - and only then - runs the availability check.  Checking
// availability against an unvalidated date would be meaningless, so
// this is the one place where fail-fast ordering is correct.
func NewReservation(ctx context.Context, id, userID, seatID uuid.UUID, date Date, seats SeatAvailability) Result[*Reservation] {
	var errs []Error
	if id == uuid.Nil {
		errs = append(errs, ErrReservationIDRequired)
	}
	if userID == uuid.Nil {
		errs = append(errs, ErrReservationUserRequired)
	}
	if seatID == uuid.Nil {
		errs = append(errs, ErrReservationSeatRequired)
	}
	if len(errs) > 0 {
		return Fail[*Reservation](errs...)
	}
	free, err := seats.IsSeatAvailable(ctx, seatID, date)
	if err != nil {
		return Fail[*Reservation](availabilityCheckFailed(err))
	}
	if !free {
		return Fail[*Reservation](SeatNotAvailable(seatID, date))
	}
	return Ok(&Reservation{id: id, date: date, userID: userID, seatID: seatID})
}

// RestoreReservation rehydrates a reservation from stored,
// already-valid parts.
func RestoreReservation(id uuid.UUID, date Date, userID, seatID uuid.UUID) *Reservation {
	return &Reservation{id: id, date: date, userID: userID, seatID: seatID}
}

// ID returns the identity of the reservation.
func (r *Reservation) ID() uuid.UUID { return r.id }

// Date returns the reserved calendar day.
func (r *Reservation) Date() Date { return r.date }

// UserID returns the reserving user's id.
func (r *Reservation) UserID() uuid.UUID { return r.userID }

// SeatID returns the reserved seat's id.
func (r *Reservation) SeatID() uuid.UUID { return r.seatID }

// Move relocates the reservation to the given seat and day in one
// step.  The availability check runs exactly once, against the final
// (seat, day) pair, so moving both at the same time can never collide
// with a slot the reservation merely passes through.  Both fields are
// assigned only after the check; a failure leaves the reservation
// untouched.  Moving to the slot it already occupies is a no-op.
func (r *Reservation) Move(ctx context.Context, seatID uuid.UUID, date Date, seats SeatAvailability) Result[Unit] {
	if seatID == uuid.Nil {
		return FailUnit(ErrReservationSeatRequired)
	}
	if seatID == r.seatID && date.Equal(r.date) {
		return OkUnit()
	}
	free, err := seats.IsSeatAvailable(ctx, seatID, date)
	if err != nil {
		return FailUnit(availabilityCheckFailed(err))
	}
	if !free {
		return FailUnit(SeatNotAvailable(seatID, date))
	}
	r.seatID = seatID
	r.date = date
	return OkUnit()
}

// ChangeDate moves the reservation to another day on the same seat.
func (r *Reservation) ChangeDate(ctx context.Context, date Date, seats SeatAvailability) Result[Unit] {
	return r.Move(ctx, r.seatID, date, seats)
}

// ChangeSeat moves the reservation to another seat on the same day.
func (r *Reservation) ChangeSeat(ctx context.Context, seatID uuid.UUID, seats SeatAvailability) Result[Unit] {
	return r.Move(ctx, seatID, r.date, seats)
}

// ChangeUser reassigns the reservation to another user.  Only the
// reference is re-validated; seat and date are unaffected, so no
// availability check runs.
func (r *Reservation) ChangeUser(userID uuid.UUID) Result[Unit] {
	if userID == uuid.Nil {
		return FailUnit(ErrReservationUserRequired)
	}
	r.userID = userID
	return OkUnit()
}

// Equal reports entity identity: same ID, nothing else.
func (r *Reservation) Equal(other *Reservation) bool {
	return other != nil && r.id == other.id
}
