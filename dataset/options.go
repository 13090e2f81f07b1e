//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package dataset

type options struct {
	recursiveCandidates bool
	recursiveReferences bool
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures dataset discovery.
type Option func(*options)

// WithRecursiveCandidates scans the candidate directory recursively.
func WithRecursiveCandidates() Option {
	return func(o *options) {
		o.recursiveCandidates = true
	}
}

// WithRecursiveReferences scans the reference directory recursively.
func WithRecursiveReferences() Option {
	return func(o *options) {
		o.recursiveReferences = true
	}
}
