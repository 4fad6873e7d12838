package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/coworking-reservation/internal/domain"
)

// Reservation mirrors the 'reservations' table.  ReservedOn is stored
// as a DATE column; the unique (seat_id, reserved_on) index is the
// authoritative guard for the one-reservation-per-seat-per-day rule.
type Reservation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SeatID     uuid.UUID
	ReservedOn time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Domain rehydrates the record into the entity form.
func (r *Reservation) Domain() (*domain.Reservation, error) {
	date := domain.NewDate(r.ReservedOn)
	if date.IsFailure() {
		return nil, errors.New("reservation row corrupt: " + date.FirstError().Error())
	}
	return domain.RestoreReservation(r.ID, date.Value(), r.UserID, r.SeatID), nil
}

// ReservationDetail joins a reservation with its seat's floor-plan
// name for display.
type ReservationDetail struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seat_id"`
	SeatName   string    `json:"seat_name"`
	ReservedOn string    `json:"reserved_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationRepo provides access to reservation rows and implements
// domain.SeatAvailability.
type ReservationRepo struct{ DB *sql.DB }

// NewReservationRepo constructs a ReservationRepo bound to the given
// DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// IsSeatAvailable reports whether no reservation holds the seat on the
// given day.  Evaluated against committed data; concurrent writers are
// ultimately resolved by the unique index at insert time.
func (r *ReservationRepo) IsSeatAvailable(ctx context.Context, seatID uuid.UUID, date domain.Date) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM reservations WHERE seat_id = ? AND reserved_on = ?)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, q, seatID.String(), date.String()).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// Create inserts a validated domain reservation.  ErrDuplicate means
// another request won the (seat, day) slot between the availability
// check and this insert.
func (r *ReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	const q = `INSERT INTO reservations (id, user_id, seat_id, reserved_on) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, q,
		res.ID().String(), res.UserID().String(), res.SeatID().String(), res.Date().String())
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// GetByID fetches a reservation by id.
func (r *ReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	const q = `SELECT id, user_id, seat_id, reserved_on, created_at, updated_at
	           FROM reservations WHERE id = ? LIMIT 1`
	var rec Reservation
	var id36, user36, seat36 string
	err := r.DB.QueryRowContext(ctx, q, id.String()).
		Scan(&id36, &user36, &seat36, &rec.ReservedOn, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if rec.ID, err = uuid.Parse(id36); err != nil {
		return nil, err
	}
	if rec.UserID, err = uuid.Parse(user36); err != nil {
		return nil, err
	}
	if rec.SeatID, err = uuid.Parse(seat36); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns the user's reservations joined with seat names,
// newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationDetail, error) {
	const q = `SELECT r.id, r.seat_id, s.name, r.reserved_on, r.created_at
	           FROM reservations r
	           JOIN seats s ON s.id = r.seat_id
	           WHERE r.user_id = ?
	           ORDER BY r.reserved_on DESC, r.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]ReservationDetail, 0)
	for rows.Next() {
		var d ReservationDetail
		var id36, seat36 string
		var reservedOn time.Time
		if err := rows.Scan(&id36, &seat36, &d.SeatName, &reservedOn, &d.CreatedAt); err != nil {
			return nil, err
		}
		if d.ID, err = uuid.Parse(id36); err != nil {
			return nil, err
		}
		if d.SeatID, err = uuid.Parse(seat36); err != nil {
			return nil, err
		}
		d.ReservedOn = reservedOn.UTC().Format("2006-01-02")
		details = append(details, d)
	}
	return details, rows.Err()
}

// Update persists the mutable fields of a domain reservation.
// ErrDuplicate means the target (seat, day) slot was taken
// concurrently.
func (r *ReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	const q = `UPDATE reservations
	           SET user_id = ?, seat_id = ?, reserved_on = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, q,
		res.UserID().String(), res.SeatID().String(), res.Date().String(), res.ID().String())
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// Delete removes a reservation owned by the given user.  Scoping the
// statement by user id enforces ownership in the same round trip.
func (r *ReservationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = ? AND user_id = ?`
	res, err := r.DB.ExecContext(ctx, q, id.String(), userID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
