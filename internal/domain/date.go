package domain

import "time"

// dateLayout is the canonical textual form of a reservation date.
const dateLayout = "2006-01-02"

var ErrDateRequired = NewError("date.required", "date must not be the zero value", CategoryValidation)

// Date is a calendar day in UTC.  Reservations collide at day
// granularity, so the factory truncates any time-of-day component:
// two instants on the same UTC day produce equal Dates.
type Date struct {
	value time.Time
}

// NewDate validates raw and truncates it to UTC midnight.  The zero
// time is rejected; it is the canonical "no value" for timestamps.
func NewDate(raw time.Time) Result[Date] {
	if raw.IsZero() {
		return Fail[Date](ErrDateRequired)
	}
	utc := raw.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return Ok(Date{value: day})
}

// ParseDate validates a textual YYYY-MM-DD value.
func ParseDate(raw string) Result[Date] {
	if raw == "" {
		return Fail[Date](ErrDateRequired)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Fail[Date](NewError("date.invalid_format", "date must be formatted as YYYY-MM-DD", CategoryValidation))
	}
	return NewDate(t)
}

// Time returns the UTC midnight instant of the day.
func (d Date) Time() time.Time { return d.value }

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(other Date) bool { return d.value.Equal(other.value) }

// String returns the YYYY-MM-DD form.
func (d Date) String() string { return d.value.Format(dateLayout) }
