package domain

import "regexp"

var (
	seatNumberPattern = regexp.MustCompile(`^[0-9]+$`)
	seatRowPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	// seatNamePattern anchors the one canonical direction: row letters
	// first, then the number, as printed on the floor plan ("A23").
	seatNamePattern = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)$`)
)

var (
	ErrSeatNumberRequired = NewError("seat_number.required", "seat number must not be empty", CategoryValidation)
	ErrSeatNumberFormat   = NewError("seat_number.invalid_format", "seat number may contain digits only", CategoryValidation)
	ErrSeatRowRequired    = NewError("seat_row.required", "seat row must not be empty", CategoryValidation)
	ErrSeatRowFormat      = NewError("seat_row.invalid_format", "seat row may contain letters only", CategoryValidation)
	ErrSeatNameFormat     = NewError("seat_name.invalid_format", "seat name must be row letters followed by digits, e.g. A23", CategoryValidation)
)

// SeatNumber is the numeric token of a seat's position within a row.
type SeatNumber struct {
	value string
}

// NewSeatNumber validates raw as a non-empty numeric token.
func NewSeatNumber(raw string) Result[SeatNumber] {
	var errs []Error
	if raw == "" {
		errs = append(errs, ErrSeatNumberRequired)
	}
	if !seatNumberPattern.MatchString(raw) {
		errs = append(errs, ErrSeatNumberFormat)
	}
	if len(errs) > 0 {
		return Fail[SeatNumber](errs...)
	}
	return Ok(SeatNumber{value: raw})
}

func (n SeatNumber) String() string { return n.value }

// SeatRow is the alphabetic row label of a seat.
type SeatRow struct {
	value string
}

// NewSeatRow validates raw as a non-empty alphabetic token.
func NewSeatRow(raw string) Result[SeatRow] {
	var errs []Error
	if raw == "" {
		errs = append(errs, ErrSeatRowRequired)
	}
	if !seatRowPattern.MatchString(raw) {
		errs = append(errs, ErrSeatRowFormat)
	}
	if len(errs) > 0 {
		return Fail[SeatRow](errs...)
	}
	return Ok(SeatRow{value: raw})
}

func (r SeatRow) String() string { return r.value }

// SeatName identifies a seat on the floor plan by row and number.  The
// canonical textual form is row then number ("A23"), and ParseSeatName
// is the exact inverse of String for every valid name.
type SeatName struct {
	row    SeatRow
	number SeatNumber
}

// NewSeatName combines two valid parts.  It cannot fail.
func NewSeatName(number SeatNumber, row SeatRow) SeatName {
	return SeatName{row: row, number: number}
}

// NewSeatNameFromStrings validates both raw parts and combines them.
// Errors from both fields are aggregated.
func NewSeatNameFromStrings(numberRaw, rowRaw string) Result[SeatName] {
	var errs []Error
	number := NewSeatNumber(numberRaw)
	if number.IsFailure() {
		errs = append(errs, number.Errors()...)
	}
	row := NewSeatRow(rowRaw)
	if row.IsFailure() {
		errs = append(errs, row.Errors()...)
	}
	if len(errs) > 0 {
		return Fail[SeatName](errs...)
	}
	return Ok(NewSeatName(number.Value(), row.Value()))
}

// ParseSeatName parses the canonical combined form.  A malformed
// string yields a single format error rather than a partial parse.
func ParseSeatName(raw string) Result[SeatName] {
	m := seatNamePattern.FindStringSubmatch(raw)
	if m == nil {
		return Fail[SeatName](ErrSeatNameFormat)
	}
	return NewSeatNameFromStrings(m[2], m[1])
}

// Row returns the row part.
func (n SeatName) Row() SeatRow { return n.row }

// Number returns the number part.
func (n SeatName) Number() SeatNumber { return n.number }

// String returns the canonical row-then-number form.
func (n SeatName) String() string {
	return n.row.String() + n.number.String()
}
