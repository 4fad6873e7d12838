package domain

// Credentials pairs a validated e-mail with a validated password.
// Uniqueness of the e-mail across users is not this type's concern; it
// is enforced at the repository boundary.
type Credentials struct {
	email    Email
	password Password
}

// NewCredentials combines two valid parts.  It cannot fail.
func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

// NewCredentialsFromStrings validates both raw parts and combines
// them, aggregating the errors of both fields.
func NewCredentialsFromStrings(emailRaw, passwordRaw string) Result[Credentials] {
	var errs []Error
	email := NewEmail(emailRaw)
	if email.IsFailure() {
		errs = append(errs, email.Errors()...)
	}
	password := NewPassword(passwordRaw)
	if password.IsFailure() {
		errs = append(errs, password.Errors()...)
	}
	if len(errs) > 0 {
		return Fail[Credentials](errs...)
	}
	return Ok(NewCredentials(email.Value(), password.Value()))
}

// Email returns the e-mail part.
func (c Credentials) Email() Email { return c.email }

// Password returns the password part.
func (c Credentials) Password() Password { return c.password }

// String returns the canonical "email password" form.
func (c Credentials) String() string {
	return c.email.String() + " " + c.password.String()
}
