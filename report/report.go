//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package report bundles confusion counts, derived metrics and experiment
// metadata into a snapshot that can be rendered, persisted and reloaded.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
)

// Report is an immutable snapshot of an evaluation outcome. The true
// negative slot exists only to keep the confusion matrix square; the
// not-predicted, not-true space is unbounded in open-world extraction.
type Report struct {
	ReportID      string `json:"report_id"`
	TruePositive  int    `json:"true_positive"`
	FalsePositive int    `json:"false_positive"`
	FalseNegative int    `json:"false_negative"`
	TrueNegative  int    `json:"true_negative"`
	// ZeroDivision records the fallback used for zero-denominator metrics,
	// null meaning undefined. Persisting it lets Load recompute metrics
	// under the same policy.
	ZeroDivision         *float64          `json:"zero_division"`
	Metadata             map[string]any    `json:"metadata"`
	ConfusionMatrix      [][]int           `json:"confusion_matrix"`
	Metrics              confusion.Metrics `json:"metrics"`
	ClassificationReport string            `json:"classification_report,omitempty"`
}

// New builds a Report from a confusion record and the core experiment
// metadata. Extra metadata entries and the zero-division policy are supplied
// through options.
func New(c confusion.Confusion, creator, experiment, model string, opt ...Option) *Report {
	opts := newOptions(opt...)
	metadata := map[string]any{
		"creator":    creator,
		"experiment": experiment,
		"model":      model,
		"date":       time.Now().Format(time.DateOnly),
	}
	for key, value := range opts.metadata {
		metadata[key] = value
	}
	reportID := opts.reportID
	if reportID == "" {
		reportID = uuid.New().String()
	}
	r := &Report{
		ReportID:      reportID,
		TruePositive:  c.TruePositive,
		FalsePositive: c.FalsePositive,
		FalseNegative: c.FalseNegative,
		ZeroDivision:  opts.zeroDivision,
		Metadata:      metadata,
	}
	r.recompute()
	return r
}

// recompute derives the matrix, metrics and rendered table from the counts.
func (r *Report) recompute() {
	c := r.Confusion()
	r.ConfusionMatrix = c.Matrix()
	metricOpts := []confusion.Option{confusion.WithUndefinedMetrics()}
	if r.ZeroDivision != nil {
		metricOpts = []confusion.Option{confusion.WithZeroDivision(*r.ZeroDivision)}
	}
	r.Metrics = confusion.Compute(c, metricOpts...)
	r.ClassificationReport = r.renderTable()
}

// Confusion returns the raw counts as a confusion record.
func (r *Report) Confusion() confusion.Confusion {
	return confusion.Confusion{
		TruePositive:  r.TruePositive,
		FalsePositive: r.FalsePositive,
		FalseNegative: r.FalseNegative,
	}
}

// GetMetrics returns the computed metrics.
func (r *Report) GetMetrics() confusion.Metrics {
	return r.Metrics
}

// GetMetric returns a single metric by name: "precision", "recall" or "f1".
// Requesting any other name is a programmer error and is returned as one.
func (r *Report) GetMetric(name string) (*float64, error) {
	switch name {
	case "precision":
		return r.Metrics.Precision, nil
	case "recall":
		return r.Metrics.Recall, nil
	case "f1":
		return r.Metrics.F1, nil
	default:
		return nil, fmt.Errorf("unsupported metric %q", name)
	}
}

// Save writes the report as an indented JSON file, atomically.
func (r *Report) Save(path string) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	log.Debugf("report: saved %s to %s", r.ReportID, path)
	return nil
}

// Load reads a report previously written by Save. Metrics, the matrix and
// the rendered table are recomputed from the restored counts rather than
// trusted, so reloaded reports stay correct if metric formulas change.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r Report
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}
	if r.TruePositive < 0 || r.FalsePositive < 0 || r.FalseNegative < 0 {
		return nil, errors.New("report counts must be non-negative")
	}
	r.recompute()
	return &r, nil
}

// String renders a human-readable classification table.
func (r *Report) String() string {
	return r.renderTable()
}

// renderTable mimics the familiar classification-report layout with a single
// positive class; support is the number of expected fields.
func (r *Report) renderTable() string {
	support := r.TruePositive + r.FalseNegative
	var b strings.Builder
	fmt.Fprintf(&b, "%14s %9s %9s %9s\n\n", "", "precision", "recall", "f1-score")
	fmt.Fprintf(&b, "%14s %9s %9s %9s   support=%d\n",
		"extracted",
		formatMetric(r.Metrics.Precision),
		formatMetric(r.Metrics.Recall),
		formatMetric(r.Metrics.F1),
		support,
	)
	return b.String()
}

func formatMetric(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *value)
}
