//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package scorer turns a reference/candidate document pair into a confusion
// record. A candidate that is not a JSON object or array, or that the differ
// cannot compare, is scored as a total failure: every expected field counts
// as both missed and wrongly filled.
package scorer

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
	"trpc.group/trpc-go/trpc-phenoeval-go/jsondiff"
)

// Differ computes a structural diff between a reference and a candidate
// document. Implementations must report differences through the jsondiff
// node taxonomy; their internal node shape must not leak to callers.
type Differ interface {
	Diff(reference, candidate any) (*jsondiff.Node, error)
}

// Scorer scores candidate documents against reference documents.
type Scorer struct {
	differ Differ
}

// New creates a Scorer. Without options it uses the built-in structural
// differ with the default depth bound.
func New(opt ...Option) *Scorer {
	opts := newOptions(opt...)
	differ := opts.differ
	if differ == nil {
		differ = &structDiffer{maxDepth: opts.maxDepth}
	}
	return &Scorer{differ: differ}
}

// Score compares a candidate document against a reference document and
// returns the confusion record. It never fails on bad candidate data; the
// reference is assumed to be a well-formed ground-truth document.
func (s *Scorer) Score(reference, candidate any) confusion.Confusion {
	totalExpected := jsondiff.CountLeaves(reference)
	if !isDocument(candidate) {
		return totalFailure(totalExpected)
	}
	extraFP := jsondiff.CountExtraKeys(reference, candidate)
	node, err := s.diff(reference, candidate)
	if err != nil {
		log.Warnf("scorer: diff failed, scoring candidate as total failure: %v", err)
		return totalFailure(totalExpected)
	}
	diffFP, diffFN := jsondiff.Tally(node)
	fp := extraFP + diffFP
	fn := diffFN
	tp := totalExpected - fn
	if tp < 0 {
		tp = 0
	}
	log.Debugf("scorer: total_expected=%d tp=%d fp=%d fn=%d", totalExpected, tp, fp, fn)
	return confusion.Confusion{TruePositive: tp, FalsePositive: fp, FalseNegative: fn}
}

// diff runs the configured differ, converting a panic from a third-party
// implementation into an error so that Score can apply the failure policy.
func (s *Scorer) diff(reference, candidate any) (node *jsondiff.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("differ panic: %v", r)
		}
	}()
	return s.differ.Diff(reference, candidate)
}

// Score compares a candidate against a reference using a default Scorer.
func Score(reference, candidate any) confusion.Confusion {
	return New().Score(reference, candidate)
}

// ParseCandidate decodes raw model output into a JSON-like value. Output
// that is not valid JSON is returned as a string, which Score then treats
// as a total failure.
func ParseCandidate(data []byte) any {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return string(data)
	}
	return value
}

// isDocument reports whether the candidate has a comparable top-level shape.
func isDocument(candidate any) bool {
	switch candidate.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// totalFailure scores an unusable candidate: every expected field is both
// missing and wrongly filled.
func totalFailure(totalExpected int) confusion.Confusion {
	return confusion.Confusion{
		TruePositive:  0,
		FalsePositive: totalExpected,
		FalseNegative: totalExpected,
	}
}

// structDiffer is the built-in Differ backed by jsondiff.
type structDiffer struct {
	maxDepth int
}

// Diff implements Differ.
func (d *structDiffer) Diff(reference, candidate any) (*jsondiff.Node, error) {
	if d.maxDepth > 0 {
		return jsondiff.Diff(reference, candidate, jsondiff.WithMaxDepth(d.maxDepth))
	}
	return jsondiff.Diff(reference, candidate)
}
