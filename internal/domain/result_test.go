package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkCarriesValue(t *testing.T) {
	r := Ok(42)
	require.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.Empty(t, r.Errors())
	assert.Equal(t, ErrNone, r.FirstError())
}

func TestFailCarriesErrorsInOrder(t *testing.T) {
	a := NewError("a", "first", CategoryValidation)
	b := NewError("b", "second", CategoryValidation)

	r := Fail[int](a, b)
	require.True(t, r.IsFailure())
	assert.Equal(t, []Error{a, b}, r.Errors())
	assert.Equal(t, a, r.FirstError())
}

func TestFailDropsSentinelAndDuplicates(t *testing.T) {
	a := NewError("a", "first", CategoryValidation)

	r := Fail[int](ErrNone, a, a, ErrNone)
	assert.Equal(t, []Error{a}, r.Errors())
}

func TestFailWithoutErrorsSubstitutesInternalError(t *testing.T) {
	r := Fail[int]()
	require.True(t, r.IsFailure())
	require.Len(t, r.Errors(), 1)
	assert.Equal(t, "result.empty_failure", r.FirstError().Code)
	assert.Equal(t, CategoryException, r.FirstError().Category)

	// Sentinel-only input degenerates the same way.
	r = Fail[int](ErrNone)
	assert.Equal(t, "result.empty_failure", r.FirstError().Code)
}

func TestValuePanicsOnFailure(t *testing.T) {
	r := Fail[string](NewError("x", "boom", CategoryValidation))
	assert.Panics(t, func() { _ = r.Value() })
}

func TestMatchBranches(t *testing.T) {
	var got int
	Ok(7).Match(
		func(v int) { got = v },
		func([]Error) { t.Fatal("failure branch on a success") },
	)
	assert.Equal(t, 7, got)

	var gotErrs []Error
	Fail[int](NewError("x", "boom", CategoryValidation)).Match(
		func(int) { t.Fatal("success branch on a failure") },
		func(errs []Error) { gotErrs = errs },
	)
	require.Len(t, gotErrs, 1)
	assert.Equal(t, "x", gotErrs[0].Code)
}

func TestErrorsReturnsCopy(t *testing.T) {
	r := Fail[int](NewError("a", "first", CategoryValidation))
	errs := r.Errors()
	errs[0] = NewError("mutated", "mutated", CategoryValidation)
	assert.Equal(t, "a", r.FirstError().Code)
}

func TestErrorEqualityIgnoresCategory(t *testing.T) {
	a := NewError("x", "same", CategoryValidation)
	b := NewError("x", "same", CategoryConflict)
	c := NewError("x", "different", CategoryValidation)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
