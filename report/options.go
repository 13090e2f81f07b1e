//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package report

type options struct {
	reportID     string
	zeroDivision *float64
	metadata     map[string]any
}

func newOptions(opt ...Option) *options {
	zero := 0.0
	opts := &options{zeroDivision: &zero}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures report construction.
type Option func(*options)

// WithReportID sets an explicit report ID instead of a generated one.
func WithReportID(id string) Option {
	return func(o *options) {
		o.reportID = id
	}
}

// WithZeroDivision sets the fallback value for zero-denominator metrics.
func WithZeroDivision(value float64) Option {
	return func(o *options) {
		v := value
		o.zeroDivision = &v
	}
}

// WithUndefinedMetrics leaves zero-denominator metrics undefined (JSON null)
// instead of substituting a numeric fallback.
func WithUndefinedMetrics() Option {
	return func(o *options) {
		o.zeroDivision = nil
	}
}

// WithMetadata adds one extra metadata entry, such as a hyperparameter or a
// dataset identifier.
func WithMetadata(key string, value any) Option {
	return func(o *options) {
		if o.metadata == nil {
			o.metadata = make(map[string]any)
		}
		o.metadata[key] = value
	}
}
