package domain

import "regexp"

const (
	nameMinLength = 2
	nameMaxLength = 50
)

var namePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

var (
	ErrFirstNameRequired = NewError("first_name.required", "first name must not be empty", CategoryValidation)
	ErrFirstNameTooShort = NewError("first_name.too_short", "first name must be at least 2 characters", CategoryValidation)
	ErrFirstNameTooLong  = NewError("first_name.too_long", "first name must be at most 50 characters", CategoryValidation)
	ErrFirstNameFormat   = NewError("first_name.invalid_format", "first name may contain letters only", CategoryValidation)

	ErrLastNameRequired = NewError("last_name.required", "last name must not be empty", CategoryValidation)
	ErrLastNameTooShort = NewError("last_name.too_short", "last name must be at least 2 characters", CategoryValidation)
	ErrLastNameTooLong  = NewError("last_name.too_long", "last name must be at most 50 characters", CategoryValidation)
	ErrLastNameFormat   = NewError("last_name.invalid_format", "last name may contain letters only", CategoryValidation)
)

// FirstName is a validated given name.
type FirstName struct {
	value string
}

// NewFirstName validates raw as a given name: non-empty, 2-50
// characters, letters only.  Every failing check contributes its own
// error.
func NewFirstName(raw string) Result[FirstName] {
	if errs := checkName(raw, ErrFirstNameRequired, ErrFirstNameTooShort, ErrFirstNameTooLong, ErrFirstNameFormat); len(errs) > 0 {
		return Fail[FirstName](errs...)
	}
	return Ok(FirstName{value: raw})
}

func (n FirstName) String() string { return n.value }

// LastName is a validated family name, with the same rules as
// FirstName but its own error codes so callers can tell the fields
// apart in an aggregated failure.
type LastName struct {
	value string
}

// NewLastName validates raw as a family name.
func NewLastName(raw string) Result[LastName] {
	if errs := checkName(raw, ErrLastNameRequired, ErrLastNameTooShort, ErrLastNameTooLong, ErrLastNameFormat); len(errs) > 0 {
		return Fail[LastName](errs...)
	}
	return Ok(LastName{value: raw})
}

func (n LastName) String() string { return n.value }

// checkName applies the shared name rules and maps each violation to
// the caller's field-specific error.
func checkName(raw string, required, tooShort, tooLong, format Error) []Error {
	var errs []Error
	if raw == "" {
		errs = append(errs, required)
	}
	if len(raw) < nameMinLength {
		errs = append(errs, tooShort)
	}
	if len(raw) > nameMaxLength {
		errs = append(errs, tooLong)
	}
	if !namePattern.MatchString(raw) {
		errs = append(errs, format)
	}
	return errs
}

// FullName combines a first and a last name.  Both parts are already
// valid by construction.
type FullName struct {
	first FirstName
	last  LastName
}

// NewFullName builds a FullName from two valid parts.  It cannot fail.
func NewFullName(first FirstName, last LastName) FullName {
	return FullName{first: first, last: last}
}

// NewFullNameFromStrings validates both raw parts and combines them.
// When both are invalid the result carries the errors of both fields.
func NewFullNameFromStrings(firstRaw, lastRaw string) Result[FullName] {
	var errs []Error
	first := NewFirstName(firstRaw)
	if first.IsFailure() {
		errs = append(errs, first.Errors()...)
	}
	last := NewLastName(lastRaw)
	if last.IsFailure() {
		errs = append(errs, last.Errors()...)
	}
	if len(errs) > 0 {
		return Fail[FullName](errs...)
	}
	return Ok(NewFullName(first.Value(), last.Value()))
}

// First returns the given-name part.
func (n FullName) First() FirstName { return n.first }

// Last returns the family-name part.
func (n FullName) Last() LastName { return n.last }

// String returns the canonical "First Last" form.
func (n FullName) String() string {
	return n.first.String() + " " + n.last.String()
}
