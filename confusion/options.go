//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package confusion

// Options holds the configuration for metric computation.
type Options struct {
	// ZeroDivision is the value returned for a metric whose denominator is
	// zero. A nil pointer means the metric is undefined and stays nil.
	ZeroDivision *float64
}

// NewOptions builds Options with the default zero-division fallback of 0.0.
func NewOptions(opt ...Option) *Options {
	zero := 0.0
	opts := &Options{ZeroDivision: &zero}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures metric computation.
type Option func(*Options)

// WithZeroDivision sets the fallback value used when a metric denominator
// is zero.
func WithZeroDivision(value float64) Option {
	return func(o *Options) {
		v := value
		o.ZeroDivision = &v
	}
}

// WithUndefinedMetrics makes zero-denominator metrics undefined (nil)
// instead of a numeric fallback.
func WithUndefinedMetrics() Option {
	return func(o *Options) {
		o.ZeroDivision = nil
	}
}
