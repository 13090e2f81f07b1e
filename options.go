//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package phenoeval

import (
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore"
	"trpc.group/trpc-go/trpc-phenoeval-go/scorer"
)

type options struct {
	scorer        *scorer.Scorer
	reportManager reportstore.Manager
	parallelism   int
	creator       string
	experiment    string
	model         string
	metadata      map[string]any
	zeroDivision  *float64
}

func newOptions(opt ...Option) *options {
	zero := 0.0
	opts := &options{
		parallelism:  1,
		zeroDivision: &zero,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Evaluator.
type Option func(*options)

// WithScorer replaces the default scorer, e.g. to plug in a custom differ.
func WithScorer(s *scorer.Scorer) Option {
	return func(o *options) {
		o.scorer = s
	}
}

// WithReportManager persists a summary report of every Evaluate call
// through the given store.
func WithReportManager(manager reportstore.Manager) Option {
	return func(o *options) {
		o.reportManager = manager
	}
}

// WithParallelism sets the number of cases scored concurrently. Values
// above 1 enable the worker pool.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithExperimentInfo sets the creator, experiment and model recorded in
// persisted reports.
func WithExperimentInfo(creator, experiment, model string) Option {
	return func(o *options) {
		o.creator = creator
		o.experiment = experiment
		o.model = model
	}
}

// WithMetadata adds one extra metadata entry to persisted reports.
func WithMetadata(key string, value any) Option {
	return func(o *options) {
		if o.metadata == nil {
			o.metadata = make(map[string]any)
		}
		o.metadata[key] = value
	}
}

// WithZeroDivision sets the fallback value for zero-denominator metrics.
func WithZeroDivision(value float64) Option {
	return func(o *options) {
		v := value
		o.zeroDivision = &v
	}
}

// WithUndefinedMetrics leaves zero-denominator metrics undefined instead of
// substituting a numeric fallback.
func WithUndefinedMetrics() Option {
	return func(o *options) {
		o.zeroDivision = nil
	}
}
