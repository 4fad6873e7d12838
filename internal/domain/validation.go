package domain

// Validatable is implemented by request objects that can check their
// own shape before any domain logic runs.  Validate returns every
// violation it finds, not just the first, so callers can report all
// problems in one round trip.
type Validatable interface {
	Validate() []Error
}

// Validate runs each input's checks and aggregates the collected
// errors into a single Result.  It is transport-agnostic: HTTP
// handlers, queue consumers and tests all use the same entry point.
func Validate(inputs ...Validatable) Result[Unit] {
	var errs []Error
	for _, in := range inputs {
		errs = append(errs, in.Validate()...)
	}
	if len(errs) > 0 {
		return FailUnit(errs...)
	}
	return OkUnit()
}
