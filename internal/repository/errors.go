// Package repository implements MySQL-backed persistence for users,
// seats, reservations and refresh tokens.  Sentinel errors defined
// here let handlers distinguish failure scenarios with errors.Is; the
// duplicate-key helper translates MySQL unique-index violations so the
// domain's conflict taxonomy stays authoritative even when a race
// slips past an in-memory predicate check.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrReservationNotFound is returned when a reservation lookup yields
// no rows.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrDuplicate is returned when an insert or update violates a unique
// index (e-mail, seat name, or the seat/day reservation constraint).
// Handlers translate it into the matching domain conflict error.
var ErrDuplicate = errors.New("duplicate entry")

// ErrConflict is returned when an operation cannot proceed because of
// dependent rows, such as deleting a seat that still has reservations.
var ErrConflict = errors.New("conflict")

// MySQL server error numbers for constraint violations.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// isDuplicateKey reports whether err is a MySQL duplicate-entry error.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// isRowReferenced reports whether err is a MySQL foreign-key
// restriction error.
func isRowReferenced(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlRowIsReferenced
}
