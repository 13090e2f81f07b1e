//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for evaluation
// reports.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-phenoeval-go/report"
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore"
)

// reportFileSuffix is the suffix of report files under the base directory.
const reportFileSuffix = ".report.json"

var _ reportstore.Manager = (*manager)(nil)

// manager implements the reportstore.Manager interface using local files.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// NewManager creates a local file report manager. Use functional options to
// override the default directory.
func NewManager(opt ...reportstore.Option) reportstore.Manager {
	opts := reportstore.NewOptions(opt...)
	return &manager{baseDir: opts.BaseDir}
}

// Save stores a report as one JSON file, written atomically.
func (m *manager) Save(ctx context.Context, r *report.Report) (string, error) {
	_ = ctx
	if r == nil {
		return "", errors.New("report is nil")
	}
	reportID := r.ReportID
	if reportID == "" {
		reportID = uuid.New().String()
		r.ReportID = reportID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", err
	}
	path := m.reportPath(reportID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return reportID, nil
}

// Get retrieves a report by ID, recomputing its metrics via report.Load.
func (m *manager) Get(ctx context.Context, reportID string) (*report.Report, error) {
	_ = ctx
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return report.Load(m.reportPath(reportID))
}

// List returns all report IDs found in the base directory.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, reportFileSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, reportFileSuffix))
	}
	return ids, nil
}

// Close implements reportstore.Manager; files need no teardown.
func (m *manager) Close() error {
	return nil
}

func (m *manager) reportPath(reportID string) string {
	return filepath.Join(m.baseDir, fmt.Sprintf("%s%s", reportID, reportFileSuffix))
}
