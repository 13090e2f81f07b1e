//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package scorer

type options struct {
	differ   Differ
	maxDepth int
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a Scorer.
type Option func(*options)

// WithDiffer replaces the built-in structural differ.
func WithDiffer(differ Differ) Option {
	return func(o *options) {
		o.differ = differ
	}
}

// WithMaxDepth overrides the nesting depth bound of the built-in differ.
// It has no effect when WithDiffer is also set.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
