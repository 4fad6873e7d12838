package domain

import "unicode"

const (
	passwordMinLength = 8
	passwordMaxLength = 100
)

var (
	ErrPasswordRequired  = NewError("password.required", "password must not be empty", CategoryValidation)
	ErrPasswordTooShort  = NewError("password.too_short", "password must be at least 8 characters", CategoryValidation)
	ErrPasswordTooLong   = NewError("password.too_long", "password must be at most 100 characters", CategoryValidation)
	ErrPasswordNoUpper   = NewError("password.missing_uppercase", "password must contain an uppercase letter", CategoryValidation)
	ErrPasswordNoLower   = NewError("password.missing_lowercase", "password must contain a lowercase letter", CategoryValidation)
	ErrPasswordNoDigit   = NewError("password.missing_digit", "password must contain a digit", CategoryValidation)
	ErrPasswordNoSpecial = NewError("password.missing_special", "password must contain a special character", CategoryValidation)
)

// Password is a plaintext password that satisfied the strength policy
// at construction time.  It exists only between input validation and
// hashing; the hash, never the value object, is what gets stored.
type Password struct {
	value string
}

// NewPassword validates raw against the strength policy.  Character
// class checks are done with unicode tables rather than a regexp
// because RE2 has no lookahead.
func NewPassword(raw string) Result[Password] {
	var errs []Error
	if raw == "" {
		errs = append(errs, ErrPasswordRequired)
	}
	if len(raw) < passwordMinLength {
		errs = append(errs, ErrPasswordTooShort)
	}
	if len(raw) > passwordMaxLength {
		errs = append(errs, ErrPasswordTooLong)
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, ErrPasswordNoUpper)
	}
	if !hasLower {
		errs = append(errs, ErrPasswordNoLower)
	}
	if !hasDigit {
		errs = append(errs, ErrPasswordNoDigit)
	}
	if !hasSpecial {
		errs = append(errs, ErrPasswordNoSpecial)
	}
	if len(errs) > 0 {
		return Fail[Password](errs...)
	}
	return Ok(Password{value: raw})
}

// String returns the plaintext.  Call sites are expected to hash it
// immediately; it must never be logged or persisted as-is.
func (p Password) String() string { return p.value }
