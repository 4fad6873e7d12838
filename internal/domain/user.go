package domain

import "github.com/google/uuid"

var ErrUserIDRequired = NewError("user.id_required", "user id must not be empty", CategoryValidation)

// EmailTaken is the conflict raised when a user's e-mail is already
// registered.  The repository's unique index is the authoritative
// check; this error is also what an index violation translates into.
func EmailTaken(email Email) Error {
	return NewError("user.email_taken", "email "+email.String()+" is already registered", CategoryConflict)
}

// User is a member of the coworking space.  Instances are always
// valid: they exist only through NewUser, and every mutation
// re-validates before any field is assigned.  Two users are the same
// entity iff their IDs match, regardless of field values.
type User struct {
	id          uuid.UUID
	name        FullName
	credentials Credentials
}

// NewUser validates all four raw fields and constructs the entity only
// when every one of them passes.  The failure case carries the errors
// of every failing field in call order, duplicates collapsed.
func NewUser(id uuid.UUID, firstName, lastName, email, password string) Result[*User] {
	var errs []Error
	if id == uuid.Nil {
		errs = append(errs, ErrUserIDRequired)
	}
	name := NewFullNameFromStrings(firstName, lastName)
	if name.IsFailure() {
		errs = append(errs, name.Errors()...)
	}
	creds := NewCredentialsFromStrings(email, password)
	if creds.IsFailure() {
		errs = append(errs, creds.Errors()...)
	}
	if len(errs) > 0 {
		return Fail[*User](errs...)
	}
	return Ok(&User{id: id, name: name.Value(), credentials: creds.Value()})
}

// ID returns the identity of the user.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the user's full name.
func (u *User) Name() FullName { return u.name }

// Credentials returns the user's credentials.
func (u *User) Credentials() Credentials { return u.credentials }

// ChangeName replaces the full name.  Both parts are validated before
// either is assigned; on failure the previous name stays intact.
func (u *User) ChangeName(firstName, lastName string) Result[Unit] {
	name := NewFullNameFromStrings(firstName, lastName)
	if name.IsFailure() {
		return FailUnit(name.Errors()...)
	}
	u.name = name.Value()
	return OkUnit()
}

// ChangeEmail replaces the e-mail while keeping the password.
func (u *User) ChangeEmail(email string) Result[Unit] {
	e := NewEmail(email)
	if e.IsFailure() {
		return FailUnit(e.Errors()...)
	}
	u.credentials = NewCredentials(e.Value(), u.credentials.Password())
	return OkUnit()
}

// ChangePassword replaces the password while keeping the e-mail.
func (u *User) ChangePassword(password string) Result[Unit] {
	p := NewPassword(password)
	if p.IsFailure() {
		return FailUnit(p.Errors()...)
	}
	u.credentials = NewCredentials(u.credentials.Email(), p.Value())
	return OkUnit()
}

// Equal reports entity identity: same ID, nothing else.
func (u *User) Equal(other *User) bool {
	return other != nil && u.id == other.id
}
