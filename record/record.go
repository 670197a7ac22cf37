// Package record provides the two-field credential record carried by line streams
// and its single-line JSON encoding.
package record

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// New returns a new [Record] with the given identifier and secret.
func New[S ~string | ~[]byte](identifier, secret S) Record {
	return Record{
		Identifier: string(identifier),
		Secret:     string(secret),
	}
}

// NewFromStringers returns a new [Record] built from the string forms of the given values.
func NewFromStringers(identifier, secret fmt.Stringer) Record {
	return Record{
		Identifier: identifier.String(),
		Secret:     secret.String(),
	}
}

// Decode decodes a single encoded line into a [Record].
// The line must not contain the terminating newline.
// Any failure is reported as a [*DecodeError].
func Decode(line []byte) (Record, error) {
	var r Record

	err := r.UnmarshalText(line)
	if err != nil {
		return Record{}, err
	}

	return r, nil
}

// ---

// Record is a pair of an identifier and a secret.
// It is encoded as a JSON object with "username" and "password" keys.
type Record struct {
	Identifier string
	Secret     string
}

// Encode returns the single-line encoded form of the record without a trailing newline.
func (r Record) Encode() ([]byte, error) {
	return r.AppendEncoded(nil), nil
}

// AppendEncoded appends the encoded form of the record to dst and returns the extended buffer.
func (r Record) AppendEncoded(dst []byte) []byte {
	dst = append(dst, '{')
	dst = appendString(dst, KeyIdentifier)
	dst = append(dst, ':')
	dst = appendString(dst, r.Identifier)
	dst = append(dst, ',')
	dst = appendString(dst, KeySecret)
	dst = append(dst, ':')
	dst = appendString(dst, r.Secret)

	return append(dst, '}')
}

// MarshalText implements [encoding.TextMarshaler].
func (r Record) MarshalText() ([]byte, error) {
	return r.Encode()
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Record) UnmarshalText(line []byte) error {
	// The parser does not check escape sequences and control characters in strings.
	err := fastjson.ValidateBytes(line)
	if err != nil {
		return newDecodeError(line, "", fmt.Errorf("%w: %w", ErrSyntax, err))
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(line)
	if err != nil {
		return newDecodeError(line, "", fmt.Errorf("%w: %w", ErrSyntax, err))
	}

	if v.Type() != fastjson.TypeObject {
		return newDecodeError(line, "", fmt.Errorf("%w: got %s", ErrNotObject, v.Type()))
	}

	identifier, err := field(v, line, KeyIdentifier)
	if err != nil {
		return err
	}

	secret, err := field(v, line, KeySecret)
	if err != nil {
		return err
	}

	r.Identifier = identifier
	r.Secret = secret

	return nil
}

// ---

const (
	// KeyIdentifier is the JSON key holding [Record.Identifier].
	KeyIdentifier = "username"
	// KeySecret is the JSON key holding [Record.Secret].
	KeySecret = "password"
)

// ---

func field(object *fastjson.Value, line []byte, key string) (string, error) {
	v := object.Get(key)
	if v == nil {
		return "", newDecodeError(line, key, ErrMissingField)
	}

	if v.Type() != fastjson.TypeString {
		return "", newDecodeError(line, key, fmt.Errorf("%w: expected string, got %s", ErrFieldType, v.Type()))
	}

	// The parser owns the returned bytes until it is put back to the pool.
	return string(v.GetStringBytes()), nil
}

var parserPool fastjson.ParserPool
