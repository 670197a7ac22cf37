package linerec

import "fmt"

// Policy defines what a [Parser] does with a terminated line that fails to decode.
type Policy int

const (
	PolicyLenient Policy = iota // PolicyLenient drops the line and continues with the next one.
	PolicyStrict                // PolicyStrict aborts parsing and discards records decoded so far.
)

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyLenient:
		return "lenient"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case PolicyLenient, PolicyStrict:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownPolicy, int(p))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lenient":
		*p = PolicyLenient
	case "strict":
		*p = PolicyStrict
	default:
		return fmt.Errorf("%w: %q", errUnknownPolicy, text)
	}

	return nil
}
