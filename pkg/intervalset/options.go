package intervalset

import "github.com/go-logr/logr"

type Option func(*options)

type options struct {
	logger       logr.Logger
	allowOverlap bool
}

func newOptions(opts ...Option) options {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used to report rejected inserts at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// AllowOverlap lets the base set store intervals of different labels that
// overlap each other. Labels stay unique.
func AllowOverlap() Option {
	return func(o *options) {
		o.allowOverlap = true
	}
}
