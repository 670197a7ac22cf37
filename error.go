package linerec

import (
	"errors"
	"fmt"
)

// Kind classifies a parse [Error].
type Kind int

const (
	KindIncomplete Kind = iota // KindIncomplete means the next record is not terminated yet.
	KindNoMatch                // KindNoMatch means the next line is not a valid record, and it can be skipped.
	KindFatal                  // KindFatal means the next line is not a valid record, and parsing must stop.
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIncomplete:
		return "incomplete"
	case KindNoMatch:
		return "no-match"
	case KindFatal:
		return "fatal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ---

// Error is an error returned by a [Parser] or a [Reader].
// It matches [ErrIncomplete], [ErrNoMatch] or [ErrFatal] according to its kind.
type Error struct {
	// Kind is the classification of the error.
	Kind Kind
	// Input is the unconsumed input at the failure position.
	Input []byte
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return kindError(e.Kind).Error()
	}

	return fmt.Sprintf("%v: %v", kindError(e.Kind), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error matching the kind of e.
func (e *Error) Is(target error) bool {
	return target == kindError(e.Kind)
}

// ---

var (
	// ErrIncomplete is matched by errors of [KindIncomplete].
	ErrIncomplete = errors.New("incomplete record")
	// ErrNoMatch is matched by errors of [KindNoMatch].
	ErrNoMatch = errors.New("invalid record")
	// ErrFatal is matched by errors of [KindFatal].
	ErrFatal = errors.New("invalid record, parsing aborted")
)

// KindOf returns the kind of the first [*Error] in the chain of err.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// ---

func kindError(kind Kind) error {
	switch kind {
	case KindIncomplete:
		return ErrIncomplete
	case KindNoMatch:
		return ErrNoMatch
	default:
		return ErrFatal
	}
}
