//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package phenoeval orchestrates the scoring of extracted phenopacket
// documents against ground truth and aggregates the results. Individual
// comparisons are pure and independent; the orchestrator owns the only
// synchronization, so any number of cases can be scored in parallel.
package phenoeval

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
	"trpc.group/trpc-go/trpc-phenoeval-go/report"
	"trpc.group/trpc-go/trpc-phenoeval-go/scorer"
)

// Case pairs one reference document with one candidate extraction.
type Case struct {
	// CaseID identifies the sample, typically a PMID.
	CaseID string
	// Reference is the ground-truth JSON-like document.
	Reference any
	// Candidate is the extracted JSON-like document, or a raw string when
	// extraction failed to produce JSON.
	Candidate any
}

// CaseResult is the scored outcome of a single case.
type CaseResult struct {
	CaseID    string              `json:"case_id"`
	Confusion confusion.Confusion `json:"confusion"`
	Metrics   confusion.Metrics   `json:"metrics"`
}

// Summary aggregates the outcome of an evaluation run. Total and Metrics
// are micro-averaged: counts are summed across cases before the metrics are
// derived.
type Summary struct {
	Cases   []*CaseResult       `json:"cases"`
	Total   confusion.Confusion `json:"total"`
	Metrics confusion.Metrics   `json:"metrics"`
	// ReportID is set when a summary report was persisted.
	ReportID string `json:"report_id,omitempty"`
}

// Evaluator scores batches of cases and optionally persists summary reports.
type Evaluator interface {
	// Evaluate scores every case and returns the summary.
	Evaluate(ctx context.Context, cases []*Case) (*Summary, error)
	// Close releases the worker pool and the report store.
	Close() error
}

// New creates an Evaluator with the supplied options.
func New(opt ...Option) (Evaluator, error) {
	opts := newOptions(opt...)
	if opts.parallelism <= 0 {
		return nil, errors.New("parallelism must be greater than 0")
	}
	e := &evaluator{
		scorer:        opts.scorer,
		reportManager: opts.reportManager,
		creator:       opts.creator,
		experiment:    opts.experiment,
		model:         opts.model,
		metadata:      opts.metadata,
		zeroDivision:  opts.zeroDivision,
	}
	if e.scorer == nil {
		e.scorer = scorer.New()
	}
	if opts.parallelism > 1 {
		pool, err := createScoreCasePool(opts.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create score pool: %w", err)
		}
		e.pool = pool
	}
	return e, nil
}

// Evaluate scores every case, sequentially or on the worker pool, and
// persists a micro-averaged summary report when a store is configured.
func (e *evaluator) Evaluate(ctx context.Context, cases []*Case) (*Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := e.scoreCases(ctx, cases)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Total: confusion.Confusion{}}
	for _, result := range results {
		if result == nil {
			continue
		}
		summary.Cases = append(summary.Cases, result)
		summary.Total = summary.Total.Add(result.Confusion)
	}
	summary.Metrics = confusion.Compute(summary.Total, e.metricOptions()...)
	if e.reportManager != nil {
		reportID, err := e.saveSummary(ctx, summary)
		if err != nil {
			return nil, fmt.Errorf("save summary report: %w", err)
		}
		summary.ReportID = reportID
	}
	return summary, nil
}

// Close releases the worker pool and closes the report store.
func (e *evaluator) Close() error {
	var errs error
	if e.pool != nil {
		e.pool.Release()
	}
	if e.reportManager != nil {
		if err := e.reportManager.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("close report store: %w", err))
		}
	}
	return errs
}

// saveSummary snapshots the run totals into a report and stores it.
func (e *evaluator) saveSummary(ctx context.Context, summary *Summary) (string, error) {
	reportOpts := []report.Option{report.WithMetadata("num_cases", len(summary.Cases))}
	if e.zeroDivision == nil {
		reportOpts = append(reportOpts, report.WithUndefinedMetrics())
	} else {
		reportOpts = append(reportOpts, report.WithZeroDivision(*e.zeroDivision))
	}
	for key, value := range e.metadata {
		reportOpts = append(reportOpts, report.WithMetadata(key, value))
	}
	r := report.New(summary.Total, e.creator, e.experiment, e.model, reportOpts...)
	return e.reportManager.Save(ctx, r)
}

func (e *evaluator) metricOptions() []confusion.Option {
	if e.zeroDivision == nil {
		return []confusion.Option{confusion.WithUndefinedMetrics()}
	}
	return []confusion.Option{confusion.WithZeroDivision(*e.zeroDivision)}
}

// scoreCase runs one pure comparison.
func scoreCase(s *scorer.Scorer, idx int, evalCase *Case, metricOpts []confusion.Option) *CaseResult {
	caseID := evalCase.CaseID
	if caseID == "" {
		caseID = fmt.Sprintf("case-%d", idx)
	}
	c := s.Score(evalCase.Reference, evalCase.Candidate)
	return &CaseResult{
		CaseID:    caseID,
		Confusion: c,
		Metrics:   confusion.Compute(c, metricOpts...),
	}
}
