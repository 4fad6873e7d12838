package domain

const descriptionMaxLength = 255

var ErrDescriptionTooLong = NewError("description.too_long", "description must be at most 255 characters", CategoryValidation)

// Description is free-form text attached to a seat.  Unlike every
// other value object an empty value is a valid terminal state, not a
// validation error.
type Description struct {
	value string
}

// NewDescription validates raw.  Empty input is accepted and treated
// as the empty description.
func NewDescription(raw string) Result[Description] {
	if len(raw) > descriptionMaxLength {
		return Fail[Description](ErrDescriptionTooLong)
	}
	return Ok(Description{value: raw})
}

// String returns the wrapped text, possibly empty.
func (d Description) String() string { return d.value }

// IsEmpty reports whether the description carries no text.
func (d Description) IsEmpty() bool { return d.value == "" }
