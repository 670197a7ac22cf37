package linerec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"

	"github.com/pamburus/linerec/internal/bufpool"
)

// NewReader returns a new [Reader] that reads records from r using parser.
func NewReader[T any](r io.Reader, parser *Parser[T]) *Reader[T] {
	return &Reader[T]{
		src:    r,
		parser: parser,
		buf:    bufpool.New(),
	}
}

// ReadAll reads records from r until the end of input.
//
// If the input ends with an unterminated record, the records read so far are returned
// together with an error of [KindIncomplete].
// Any other error discards the records read so far.
func ReadAll[T any](ctx context.Context, r io.Reader, parser *Parser[T]) ([]T, error) {
	reader := NewReader(r, parser)
	defer reader.Close()

	var result []T
	for {
		values, err := reader.Next(ctx)
		switch {
		case err == nil:
			result = append(result, values...)
		case errors.Is(err, io.EOF):
			return result, nil
		case errors.Is(err, ErrIncomplete):
			return result, err
		default:
			return nil, err
		}
	}
}

// ---

// Reader reads records from an [io.Reader] progressively.
// Input is buffered until at least one terminated line is available,
// so a record split across several reads is decoded once its separator arrives.
// A Reader is not safe for concurrent use.
type Reader[T any] struct {
	src     io.Reader
	parser  *Parser[T]
	buf     *bufpool.Buffer
	scanned int
	eof     bool
	err     error
}

// Next returns the records decoded from the next block of terminated lines.
//
// At the end of input it returns [io.EOF] if nothing remains buffered,
// or an error of [KindIncomplete] wrapping [io.ErrUnexpectedEOF] if an unterminated line remains.
// Errors other than context cancellation are sticky.
func (r *Reader[T]) Next(ctx context.Context) ([]T, error) {
	for r.err == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if r.terminated() {
			values, err := r.parse()
			if err != nil {
				r.err = err

				break
			}

			if len(values) != 0 {
				return values, nil
			}
		}

		r.err = r.fill()
	}

	return nil, r.err
}

// Residual returns a copy of the buffered input that has not been consumed yet.
func (r *Reader[T]) Residual() []byte {
	if r.buf == nil {
		return nil
	}

	return slices.Clone(*r.buf)
}

// Close releases the buffer of the reader and closes the underlying reader if it is an [io.Closer].
func (r *Reader[T]) Close() error {
	if r.buf != nil {
		r.buf.Free()
		r.buf = nil
	}

	if r.err == nil {
		r.err = errReaderClosed
	}

	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

func (r *Reader[T]) terminated() bool {
	data := *r.buf
	found := bytes.IndexByte(data[r.scanned:], Separator) >= 0
	r.scanned = len(data)

	return found
}

func (r *Reader[T]) parse() ([]T, error) {
	rest, values, err := r.parser.ParseMany(*r.buf)
	if err != nil {
		// The buffer goes back to the pool on Close.
		var e *Error
		if errors.As(err, &e) {
			e.Input = slices.Clone(e.Input)
		}

		return nil, err
	}

	r.buf.Consume(r.buf.Len() - len(rest))
	r.scanned = r.buf.Len()

	return values, nil
}

func (r *Reader[T]) fill() error {
	if r.eof {
		return r.finish()
	}

	n, err := r.src.Read(r.buf.Tail())
	r.buf.Extend(n)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		r.eof = true
		if n > 0 {
			return nil
		}

		return r.finish()
	default:
		return err
	}
}

func (r *Reader[T]) finish() error {
	if r.buf.Len() == 0 {
		return io.EOF
	}

	e := &Error{
		Kind:  KindIncomplete,
		Input: slices.Clone(*r.buf),
		Err:   io.ErrUnexpectedEOF,
	}
	r.parser.report(e)

	return e
}

var errReaderClosed = errors.New("reader is closed")
