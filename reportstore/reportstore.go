//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package reportstore defines storage for evaluation reports. Backends live
// in the local, inmemory and mysql sub-packages.
package reportstore

import (
	"context"

	"trpc.group/trpc-go/trpc-phenoeval-go/report"
)

// Manager stores and retrieves evaluation reports.
type Manager interface {
	// Save persists a report and returns its ID, generating one when the
	// report carries none.
	Save(ctx context.Context, r *report.Report) (string, error)
	// Get retrieves a report by ID.
	Get(ctx context.Context, reportID string) (*report.Report, error)
	// List returns all stored report IDs.
	List(ctx context.Context) ([]string, error)
	// Close releases resources owned by the manager.
	Close() error
}
