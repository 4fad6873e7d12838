package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserValid(t *testing.T) {
	id := uuid.New()
	r := NewUser(id, "Dana", "Smith", "dana@example.com", "Str0ng!pass")
	require.True(t, r.IsSuccess())

	u := r.Value()
	assert.Equal(t, id, u.ID())
	assert.Equal(t, "Dana Smith", u.Name().String())
	assert.Equal(t, "dana@example.com", u.Credentials().Email().String())
}

func TestNewUserAggregatesAllFieldFailures(t *testing.T) {
	r := NewUser(uuid.New(), "", "", "not-an-email", "short")
	require.True(t, r.IsFailure())

	got := codes(r.Errors())
	assert.Contains(t, got, ErrFirstNameRequired.Code)
	assert.Contains(t, got, ErrLastNameRequired.Code)
	assert.Contains(t, got, ErrEmailFormat.Code)
	assert.Contains(t, got, ErrPasswordTooShort.Code)
}

func TestNewUserNilID(t *testing.T) {
	r := NewUser(uuid.Nil, "Dana", "Smith", "dana@example.com", "Str0ng!pass")
	require.True(t, r.IsFailure())
	assert.Equal(t, []string{ErrUserIDRequired.Code}, codes(r.Errors()))
}

func TestUserChangeNameFailureLeavesNameIntact(t *testing.T) {
	u := NewUser(uuid.New(), "Dana", "Smith", "dana@example.com", "Str0ng!pass").Value()

	res := u.ChangeName("Avery", "7")
	require.True(t, res.IsFailure())
	// Valid first part must not land while the last part is rejected.
	assert.Equal(t, "Dana Smith", u.Name().String())

	require.True(t, u.ChangeName("Avery", "Jones").IsSuccess())
	assert.Equal(t, "Avery Jones", u.Name().String())
}

func TestUserChangeEmailKeepsPassword(t *testing.T) {
	u := NewUser(uuid.New(), "Dana", "Smith", "dana@example.com", "Str0ng!pass").Value()

	require.True(t, u.ChangeEmail("new@example.com").IsSuccess())
	assert.Equal(t, "new@example.com", u.Credentials().Email().String())
	assert.Equal(t, "Str0ng!pass", u.Credentials().Password().String())

	res := u.ChangeEmail("broken")
	require.True(t, res.IsFailure())
	assert.Equal(t, "new@example.com", u.Credentials().Email().String())
}

func TestUserChangePasswordKeepsEmail(t *testing.T) {
	u := NewUser(uuid.New(), "Dana", "Smith", "dana@example.com", "Str0ng!pass").Value()

	require.True(t, u.ChangePassword("An0ther!pass").IsSuccess())
	assert.Equal(t, "An0ther!pass", u.Credentials().Password().String())
	assert.Equal(t, "dana@example.com", u.Credentials().Email().String())
}

func TestUserEqualityIsIdentity(t *testing.T) {
	a := NewUser(uuid.New(), "Dana", "Smith", "dana@example.com", "Str0ng!pass").Value()
	b := NewUser(uuid.New(), "Dana", "Smith", "dana@example.com", "Str0ng!pass").Value()

	// Identical field values, distinct identities.
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))
}
