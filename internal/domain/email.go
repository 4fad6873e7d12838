package domain

import "regexp"

const (
	emailMinLength = 5
	emailMaxLength = 100
)

// emailPattern is a pragmatic RFC-like check: local part, one @, and a
// dotted domain with a two-letter-or-longer TLD.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrEmailRequired = NewError("email.required", "email must not be empty", CategoryValidation)
	ErrEmailTooShort = NewError("email.too_short", "email must be at least 5 characters", CategoryValidation)
	ErrEmailTooLong  = NewError("email.too_long", "email must be at most 100 characters", CategoryValidation)
	ErrEmailFormat   = NewError("email.invalid_format", "email is not a valid address", CategoryValidation)
)

// Email is an always-valid e-mail address.  The zero value is not
// valid; instances exist only through NewEmail.  Normalization
// (trimming, lower-casing) is the caller's job and happens before the
// factory is invoked.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it.  All applicable checks run even
// after an earlier one fails, so a value that is both too short and
// malformed reports both problems.
func NewEmail(raw string) Result[Email] {
	var errs []Error
	if raw == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if len(raw) < emailMinLength {
		errs = append(errs, ErrEmailTooShort)
	}
	if len(raw) > emailMaxLength {
		errs = append(errs, ErrEmailTooLong)
	}
	if !emailPattern.MatchString(raw) {
		errs = append(errs, ErrEmailFormat)
	}
	if len(errs) > 0 {
		return Fail[Email](errs...)
	}
	return Ok(Email{value: raw})
}

// String returns the wrapped address.
func (e Email) String() string { return e.value }
