//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for
// evaluation reports, mainly for tests and short-lived runs.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-phenoeval-go/internal/clone"
	"trpc.group/trpc-go/trpc-phenoeval-go/report"
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore"
)

var _ reportstore.Manager = (*Manager)(nil)

// Manager implements the reportstore.Manager interface in memory. Stored
// reports are deep-copied on both Save and Get so callers cannot mutate the
// store's snapshots.
type Manager struct {
	mu      sync.RWMutex
	reports map[string]*report.Report
}

// NewManager creates an empty in-memory report manager.
func NewManager() *Manager {
	return &Manager{reports: make(map[string]*report.Report)}
}

// Save stores a deep copy of the report.
func (m *Manager) Save(ctx context.Context, r *report.Report) (string, error) {
	_ = ctx
	if r == nil {
		return "", errors.New("report is nil")
	}
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	stored, err := clone.CloneReport(r)
	if err != nil {
		return "", fmt.Errorf("clone report: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[stored.ReportID] = stored
	return stored.ReportID, nil
}

// Get returns a deep copy of the stored report.
func (m *Manager) Get(ctx context.Context, reportID string) (*report.Report, error) {
	_ = ctx
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	m.mu.RLock()
	stored, ok := m.reports[reportID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("report %s not found", reportID)
	}
	return clone.CloneReport(stored)
}

// List returns all stored report IDs.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close implements reportstore.Manager; memory needs no teardown.
func (m *Manager) Close() error {
	return nil
}
