package multiset

import "github.com/go-logr/logr"

type Option func(*options)

type options struct {
	logger logr.Logger
}

func newOptions(opts ...Option) options {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used to report rejected inserts and periodic
// rollbacks at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
