package record

import (
	"errors"
	"fmt"
)

// DecodeError is returned when a line is not a valid encoding of a [Record].
type DecodeError struct {
	// Line is a copy of the offending line.
	Line string
	// Field is the key of the offending field, if the failure is specific to a field.
	Field string
	// Reason is the structural cause, matching one of the Err* values of this package.
	Reason error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to decode record: field %q: %v", e.Field, e.Reason)
	}

	return fmt.Sprintf("failed to decode record: %v", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// ---

var (
	// ErrSyntax means the line is not well-formed JSON.
	ErrSyntax = errors.New("malformed JSON")
	// ErrNotObject means the line is well-formed JSON but not an object.
	ErrNotObject = errors.New("not a JSON object")
	// ErrMissingField means a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType means a key holds a value of the wrong type.
	ErrFieldType = errors.New("invalid field type")
)

// ---

func newDecodeError(line []byte, field string, reason error) *DecodeError {
	return &DecodeError{
		Line:   string(line),
		Field:  field,
		Reason: reason,
	}
}
