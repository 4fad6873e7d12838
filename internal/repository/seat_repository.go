package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/coworking-reservation/internal/domain"
)

// Seat mirrors the 'seats' table.  RowLabel and SeatNumber together
// form the floor-plan name; the combined name column carries the
// unique index.
type Seat struct {
	ID          uuid.UUID
	RowLabel    string
	SeatNumber  string
	IsBlocked   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain rehydrates the record into the always-valid entity form.  A
// row that fails value-object validation indicates corrupt data and is
// reported as an error rather than papered over.
func (s *Seat) Domain() (*domain.Seat, error) {
	name := domain.NewSeatNameFromStrings(s.SeatNumber, s.RowLabel)
	if name.IsFailure() {
		return nil, errors.New("seat row corrupt: " + name.FirstError().Error())
	}
	desc := domain.NewDescription(s.Description)
	if desc.IsFailure() {
		return nil, errors.New("seat row corrupt: " + desc.FirstError().Error())
	}
	return domain.RestoreSeat(s.ID, name.Value(), s.IsBlocked, desc.Value()), nil
}

// SeatRepo provides access to seat rows.
type SeatRepo struct{ DB *sql.DB }

// NewSeatRepo constructs a SeatRepo bound to the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{DB: db} }

// Create inserts a validated domain seat.  A duplicate name yields
// ErrDuplicate via the unique index on the name column.
func (r *SeatRepo) Create(ctx context.Context, s *domain.Seat) error {
	const q = `INSERT INTO seats (id, row_label, seat_number, name, is_blocked, description)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, q,
		s.ID().String(),
		s.Name().Row().String(),
		s.Name().Number().String(),
		s.Name().String(),
		s.IsBlocked(),
		s.Description().String(),
	)
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// GetByID fetches a seat by id.
func (r *SeatRepo) GetByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	const q = `SELECT id, row_label, seat_number, is_blocked, description, created_at, updated_at
	           FROM seats WHERE id = ? LIMIT 1`
	var s Seat
	var id36 string
	err := r.DB.QueryRowContext(ctx, q, id.String()).
		Scan(&id36, &s.RowLabel, &s.SeatNumber, &s.IsBlocked, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	if s.ID, err = uuid.Parse(id36); err != nil {
		return nil, err
	}
	return &s, nil
}

// List retrieves all seats ordered by row label then seat number.
func (r *SeatRepo) List(ctx context.Context) ([]Seat, error) {
	const q = `SELECT id, row_label, seat_number, is_blocked, description, created_at, updated_at
	           FROM seats
	           ORDER BY row_label, LENGTH(seat_number), seat_number`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Seat
	for rows.Next() {
		var s Seat
		var id36 string
		if err := rows.Scan(&id36, &s.RowLabel, &s.SeatNumber, &s.IsBlocked, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if s.ID, err = uuid.Parse(id36); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// IsNameUnique reports whether no seat currently carries the name,
// optionally ignoring one seat (the one being renamed).  The unique
// index on the name column is the authoritative backstop.
func (r *SeatRepo) IsNameUnique(ctx context.Context, name domain.SeatName, excludeID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM seats WHERE name = ? AND id <> ?)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, q, name.String(), excludeID.String()).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// Update persists the mutable fields of a domain seat.  ErrDuplicate
// signals a rename collision with another seat's name.
func (r *SeatRepo) Update(ctx context.Context, s *domain.Seat) error {
	const q = `UPDATE seats
	           SET row_label = ?, seat_number = ?, name = ?, is_blocked = ?, description = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, q,
		s.Name().Row().String(),
		s.Name().Number().String(),
		s.Name().String(),
		s.IsBlocked(),
		s.Description().String(),
		s.ID().String(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}

// Delete removes a seat.  The foreign key from reservations restricts
// deletion while bookings exist; that violation is reported as
// ErrConflict.
func (r *SeatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM seats WHERE id = ?`, id.String())
	if err != nil {
		if isRowReferenced(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}
