//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package jsondiff

// defaultMaxDepth bounds recursion for untrusted, possibly deeply nested
// model output.
const defaultMaxDepth = 1000

type options struct {
	maxDepth int
}

func newOptions(opt ...Option) *options {
	opts := &options{maxDepth: defaultMaxDepth}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a Diff call.
type Option func(*options)

// WithMaxDepth overrides the default nesting depth bound. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
