package domain

import "github.com/google/uuid"

var ErrSeatIDRequired = NewError("seat.id_required", "seat id must not be empty", CategoryValidation)

// SeatNameTaken is the conflict raised when another seat already
// carries the same name.  As with e-mails, the repository's unique
// index is the final authority and its violation maps to this error.
func SeatNameTaken(name SeatName) Error {
	return NewError("seat.name_taken", "seat "+name.String()+" already exists", CategoryConflict)
}

// Seat is a bookable desk on the floor plan.  A blocked seat stays in
// the system but cannot take new reservations.
type Seat struct {
	id          uuid.UUID
	name        SeatName
	isBlocked   bool
	description Description
}

// NewSeat validates the raw number, row and description and constructs
// the seat only when all of them pass, aggregating errors otherwise.
// New seats start unblocked.
func NewSeat(id uuid.UUID, number, row, description string) Result[*Seat] {
	var errs []Error
	if id == uuid.Nil {
		errs = append(errs, ErrSeatIDRequired)
	}
	name := NewSeatNameFromStrings(number, row)
	if name.IsFailure() {
		errs = append(errs, name.Errors()...)
	}
	desc := NewDescription(description)
	if desc.IsFailure() {
		errs = append(errs, desc.Errors()...)
	}
	if len(errs) > 0 {
		return Fail[*Seat](errs...)
	}
	return Ok(&Seat{id: id, name: name.Value(), description: desc.Value()})
}

// RestoreSeat rehydrates a seat from already-validated parts, e.g. a
// database row.  It bypasses raw-input validation on purpose: the
// parts are value objects and therefore valid by construction.
func RestoreSeat(id uuid.UUID, name SeatName, isBlocked bool, description Description) *Seat {
	return &Seat{id: id, name: name, isBlocked: isBlocked, description: description}
}

// ID returns the identity of the seat.
func (s *Seat) ID() uuid.UUID { return s.id }

// Name returns the seat's floor-plan name.
func (s *Seat) Name() SeatName { return s.name }

// IsBlocked reports whether the seat is withheld from booking.
func (s *Seat) IsBlocked() bool { return s.isBlocked }

// Description returns the seat's description, possibly empty.
func (s *Seat) Description() Description { return s.description }

// ChangeName replaces the seat's name after validating both parts.
func (s *Seat) ChangeName(number, row string) Result[Unit] {
	name := NewSeatNameFromStrings(number, row)
	if name.IsFailure() {
		return FailUnit(name.Errors()...)
	}
	s.name = name.Value()
	return OkUnit()
}

// ChangeDescription replaces the description.  Empty input clears it.
func (s *Seat) ChangeDescription(raw string) Result[Unit] {
	desc := NewDescription(raw)
	if desc.IsFailure() {
		return FailUnit(desc.Errors()...)
	}
	s.description = desc.Value()
	return OkUnit()
}

// Block withholds the seat from new reservations.
func (s *Seat) Block() { s.isBlocked = true }

// Unblock makes the seat bookable again.
func (s *Seat) Unblock() { s.isBlocked = false }

// Equal reports entity identity: same ID, nothing else.
func (s *Seat) Equal(other *Seat) bool {
	return other != nil && s.id == other.id
}
