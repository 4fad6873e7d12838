package domain

// Result is the outcome of an operation that can fail for expected,
// user-facing reasons.  It is either a success carrying a value of T,
// or a failure carrying one or more Errors.  Expected failures never
// travel as panics or plain errors through the domain layer; they are
// collected in a Result so that independent validations can be
// aggregated instead of stopping at the first problem.
type Result[T any] struct {
	value T
	errs  []Error
	ok    bool
}

// Unit is the value type for results that carry no payload, such as
// entity mutations.
type Unit struct{}

// Ok returns a successful Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// OkUnit returns a successful Result with no payload.
func OkUnit() Result[Unit] {
	return Ok(Unit{})
}

// Fail returns a failed Result.  The ErrNone sentinel is dropped and
// duplicate errors (same code and message) are collapsed while the
// insertion order of the remainder is preserved.  A failure with no
// errors left is itself a bug, so the internal empty-failure error is
// substituted instead of producing an errorless failure.
func Fail[T any](errs ...Error) Result[T] {
	kept := make([]Error, 0, len(errs))
	for _, e := range errs {
		if e.IsNone() {
			continue
		}
		dup := false
		for _, k := range kept {
			if k.Equal(e) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, errEmptyFailure)
	}
	return Result[T]{errs: kept}
}

// FailUnit is shorthand for Fail[Unit].
func FailUnit(errs ...Error) Result[Unit] {
	return Fail[Unit](errs...)
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the result carries errors.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the wrapped value.  Calling Value on a failure is a
// programmer error and panics immediately; it must never be caught and
// converted into a user-facing message.  Branch with Match or check
// IsSuccess before unwrapping.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("domain: Value called on a failed Result")
	}
	return r.value
}

// Errors returns a copy of the error list.  It is empty for a success
// and contains at least one error for a failure.
func (r Result[T]) Errors() []Error {
	out := make([]Error, len(r.errs))
	copy(out, r.errs)
	return out
}

// FirstError returns the first error of a failure, or ErrNone for a
// success.  Useful where a single representative error is enough, e.g.
// picking a transport status.
func (r Result[T]) FirstError() Error {
	if r.ok || len(r.errs) == 0 {
		return ErrNone
	}
	return r.errs[0]
}

// Match invokes exactly one of the two callbacks depending on the
// outcome.  It is the sanctioned way for calling code to branch on a
// Result without unwrapping by hand.
func (r Result[T]) Match(onSuccess func(T), onFailure func([]Error)) {
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.Errors())
}
