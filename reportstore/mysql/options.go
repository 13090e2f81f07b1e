//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package mysql

import (
	"database/sql"
	"time"
)

const (
	defaultTablePrefix = "phenoeval_"
	defaultInitTimeout = 30 * time.Second
)

type options struct {
	dsn         string
	tablePrefix string
	skipDBInit  bool
	initTimeout time.Duration
	db          *sql.DB
}

func newOptions(opt ...Option) *options {
	opts := &options{
		tablePrefix: defaultTablePrefix,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the MySQL report manager.
type Option func(*options)

// WithDSN sets the MySQL data source name.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithTablePrefix overrides the default table name prefix.
func WithTablePrefix(prefix string) Option {
	return func(o *options) {
		o.tablePrefix = prefix
	}
}

// WithSkipDBInit skips the schema bootstrap, for databases managed
// externally.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}

// WithInitTimeout bounds the schema bootstrap.
func WithInitTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.initTimeout = timeout
		}
	}
}

// WithDB injects an existing connection pool instead of opening one from a
// DSN. The caller keeps ownership and Close becomes a no-op.
func WithDB(db *sql.DB) Option {
	return func(o *options) {
		o.db = db
	}
}
