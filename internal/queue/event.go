// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// Event kinds published to the reservation.events queue.
const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationMoved     = "reservation.moved"
)

// ReservationEvent is published whenever a reservation is confirmed,
// moved or cancelled.  It carries enough context for downstream
// consumers to log or notify without querying the primary database.
type ReservationEvent struct {
	Kind          string `json:"kind"`
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	SeatID        string `json:"seat_id"`
	SeatName      string `json:"seat_name"`
	ReservedOn    string `json:"reserved_on"`
	OccurredAt    string `json:"occurred_at"`
}
