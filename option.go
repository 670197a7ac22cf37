package linerec

import "github.com/pamburus/slogx"

// Option is a configuration option for the [Parser].
type Option func(*options)

// WithPolicy sets the policy applied to lines that fail to decode.
func WithPolicy(policy Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithLogger sets the logger that receives a debug message for every parse error.
// By default nothing is logged.
func WithLogger(logger *slogx.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// ---

type options struct {
	policy Policy
	logger *slogx.Logger
}

func defaultOptions() options {
	return options{
		policy: PolicyLenient,
	}
}

func (o options) with(opts []Option) options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
