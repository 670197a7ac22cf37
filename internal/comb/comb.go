// Package comb provides a minimal set of parser combinators over byte slices.
//
// A [Parser] either consumes a prefix of its input and returns the rest with
// an output value, or fails with one of three signals:
//
//   - [ErrIncomplete] means the input ended before the parser could decide;
//   - [*Error] means the input does not match and another alternative may be tried;
//   - [*Failure] means the input matched far enough to rule out alternatives.
//
// On failure a parser never consumes input.
package comb

import (
	"bytes"
	"errors"
	"fmt"
)

// Parser is a function that parses a prefix of input.
type Parser[O any] func(input []byte) (rest []byte, output O, err error)

// ---

// TakeUntil returns a parser that takes all bytes up to the first occurrence of sep.
// The separator itself is not consumed.
// If sep is not found, [ErrIncomplete] is returned.
func TakeUntil(sep byte) Parser[[]byte] {
	return func(input []byte) ([]byte, []byte, error) {
		i := bytes.IndexByte(input, sep)
		if i < 0 {
			return input, nil, ErrIncomplete
		}

		return input[i:], input[:i:i], nil
	}
}

// Byte returns a parser that consumes exactly the byte b.
func Byte(b byte) Parser[byte] {
	return func(input []byte) ([]byte, byte, error) {
		if len(input) == 0 {
			return input, 0, ErrIncomplete
		}

		if input[0] != b {
			return input, 0, &Error{Input: input, Err: fmt.Errorf("%w: %q", errUnexpectedByte, input[0])}
		}

		return input[1:], b, nil
	}
}

// Terminated returns a parser that runs p and then term, keeping only the output of p.
func Terminated[O, T any](p Parser[O], term Parser[T]) Parser[O] {
	return func(input []byte) ([]byte, O, error) {
		rest, output, err := p(input)
		if err != nil {
			return input, output, err
		}

		rest, _, err = term(rest)
		if err != nil {
			var zero O

			return input, zero, rebase(err, input)
		}

		return rest, output, nil
	}
}

// MapRes returns a parser that applies f to the output of p.
// If f fails, the result is an [*Error] wrapping the failure positioned at the start of the input.
func MapRes[I, O any](p Parser[I], f func(I) (O, error)) Parser[O] {
	return func(input []byte) ([]byte, O, error) {
		var zero O

		rest, intermediate, err := p(input)
		if err != nil {
			return input, zero, err
		}

		output, err := f(intermediate)
		if err != nil {
			return input, zero, &Error{Input: input, Err: err}
		}

		return rest, output, nil
	}
}

// Cut returns a parser that turns recoverable errors of p into failures.
func Cut[O any](p Parser[O]) Parser[O] {
	return func(input []byte) ([]byte, O, error) {
		rest, output, err := p(input)

		var e *Error
		if errors.As(err, &e) {
			return rest, output, &Failure{Input: e.Input, Err: e.Err}
		}

		return rest, output, err
	}
}

// ---

// ErrIncomplete is returned when more input is needed to decide.
var ErrIncomplete = errors.New("incomplete input")

// Error is a recoverable parse error.
type Error struct {
	Input []byte
	Err   error
}

func (e *Error) Error() string {
	return "no match: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Failure is an unrecoverable parse error.
type Failure struct {
	Input []byte
	Err   error
}

func (e *Failure) Error() string {
	return "failure: " + e.Err.Error()
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// ---

func rebase(err error, input []byte) error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Input: input, Err: e.Err}
	}

	var f *Failure
	if errors.As(err, &f) {
		return &Failure{Input: input, Err: f.Err}
	}

	return err
}

var errUnexpectedByte = errors.New("unexpected byte")
