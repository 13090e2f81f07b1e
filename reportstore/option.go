//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package reportstore

// Options holds shared configuration for file-backed report managers.
type Options struct {
	BaseDir string
}

// NewOptions builds Options with the default base directory.
func NewOptions(opt ...Option) *Options {
	opts := &Options{BaseDir: "phenoeval_reports"}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a report manager.
type Option func(*Options)

// WithBaseDir overrides the default directory used to store reports.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}
