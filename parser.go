package linerec

import (
	"bytes"
	"encoding"
	"errors"
	"log/slog"

	"github.com/pamburus/linerec/internal/comb"
	"github.com/pamburus/slogx"
)

// Separator terminates every record in a stream.
const Separator = '\n'

// DecodeFunc decodes a single line, not including the separator, into a value.
// The line is only valid until DecodeFunc returns, [Reader] reuses its memory,
// so a value that keeps the bytes must copy them.
type DecodeFunc[T any] func(line []byte) (T, error)

// Decodable is satisfied by pointers to types that can decode themselves from a line of text.
type Decodable[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// TextDecoder returns a [DecodeFunc] that decodes values of type T using [encoding.TextUnmarshaler].
func TextDecoder[T any, PT Decodable[T]]() DecodeFunc[T] {
	return func(line []byte) (T, error) {
		var value T

		err := PT(&value).UnmarshalText(line)
		if err != nil {
			var zero T

			return zero, err
		}

		return value, nil
	}
}

// DecodeOne decodes a single line into a value of type T.
func DecodeOne[T any, PT Decodable[T]](line []byte) (T, error) {
	return TextDecoder[T, PT]()(line)
}

// Parse parses all terminated records in input using the given policy.
// See [Parser.ParseMany] for details.
func Parse[T any, PT Decodable[T]](input []byte, policy Policy, options ...Option) ([]byte, []T, error) {
	options = append(options[:len(options):len(options)], WithPolicy(policy))

	return NewParser(TextDecoder[T, PT](), options...).ParseMany(input)
}

// ---

// NewParser returns a new [Parser] that decodes lines using decode.
func NewParser[T any](decode DecodeFunc[T], options ...Option) *Parser[T] {
	opts := defaultOptions().with(options)

	line := comb.MapRes[[]byte, T](comb.TakeUntil(Separator), decode)
	if opts.policy == PolicyStrict {
		line = comb.Cut(line)
	}

	return &Parser[T]{
		opts: opts,
		line: comb.Terminated(line, comb.Byte(Separator)),
	}
}

// Parser parses newline-terminated records.
// A Parser is not safe for concurrent use.
type Parser[T any] struct {
	opts options
	line comb.Parser[T]
	stat Stat
}

// Policy returns the policy of the parser.
func (p *Parser[T]) Policy() Policy {
	return p.opts.policy
}

// Stat returns the counters accumulated by the parser so far.
func (p *Parser[T]) Stat() Stat {
	return p.stat
}

// ParseOne parses the first record in input.
//
// If input has no separator, an error of [KindIncomplete] is returned.
// If the first line fails to decode, an error of [KindNoMatch] is returned
// under [PolicyLenient] and an error of [KindFatal] under [PolicyStrict].
// In both cases the returned error wraps the decode error.
// On failure the input is returned unchanged.
// Every failure is logged if a logger is configured.
func (p *Parser[T]) ParseOne(input []byte) ([]byte, T, error) {
	rest, value, err := p.parseOne(input)
	if err != nil {
		p.report(err)

		return rest, value, err
	}

	return rest, value, nil
}

// ParseMany parses consecutive records from the beginning of input.
//
// It stops without an error at the first line that has no separator and returns it
// as a part of the unconsumed rest.
// Under [PolicyLenient] lines that fail to decode are dropped.
// Under [PolicyStrict] the first line that fails to decode aborts parsing,
// the records decoded so far are discarded and an error of [KindFatal] is returned
// along with the original input.
// Dropped lines and the fatal error are logged if a logger is configured,
// reaching the end of terminated input is not.
func (p *Parser[T]) ParseMany(input []byte) ([]byte, []T, error) {
	var values []T

	rest := input
	for len(rest) != 0 {
		next, value, err := p.parseOne(rest)
		if err != nil {
			switch err.Kind {
			case KindIncomplete:
				return rest, values, nil
			case KindNoMatch:
				p.report(err)
				rest = skipLine(rest)

				continue
			default:
				p.report(err)

				return input, nil, err
			}
		}

		values = append(values, value)
		rest = next
	}

	return rest, values, nil
}

func (p *Parser[T]) parseOne(input []byte) ([]byte, T, *Error) {
	rest, value, err := p.line(input)
	if err != nil {
		var zero T

		e := p.classify(input, err)
		if e.Kind != KindIncomplete {
			p.stat.LinesTotal++
			p.stat.LinesInvalid++
		}

		return input, zero, e
	}

	p.stat.LinesTotal++
	p.stat.RecordsParsed++

	return rest, value, nil
}

func (p *Parser[T]) classify(input []byte, err error) *Error {
	e := &Error{Input: input}

	var failure *comb.Failure
	var mismatch *comb.Error

	switch {
	case errors.As(err, &failure):
		e.Kind = KindFatal
		e.Err = failure.Err
	case errors.As(err, &mismatch):
		e.Kind = KindNoMatch
		e.Err = mismatch.Err
	case errors.Is(err, comb.ErrIncomplete):
		e.Kind = KindIncomplete
	default:
		e.Kind = KindFatal
		e.Err = err
	}

	return e
}

func (p *Parser[T]) report(e *Error) {
	logger := p.opts.logger
	if logger == nil {
		return
	}

	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs,
		slog.String("kind", e.Kind.String()),
		slog.String("input", string(firstLine(e.Input))),
	)
	if e.Err != nil {
		attrs = append(attrs, slogx.ErrorAttr(e.Err))
	}

	logger.Debug("record parse error", attrs...)
}

// ---

func skipLine(input []byte) []byte {
	i := bytes.IndexByte(input, Separator)
	if i < 0 {
		return input[len(input):]
	}

	return input[i+1:]
}

func firstLine(input []byte) []byte {
	if i := bytes.IndexByte(input, Separator); i >= 0 {
		input = input[:i]
	}

	if len(input) > maxLoggedInput {
		input = input[:maxLoggedInput]
	}

	return input
}

const maxLoggedInput = 256

var errUnknownPolicy = errors.New("unknown policy")
