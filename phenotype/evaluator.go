//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package phenotype accumulates set-based label evaluation counts across
// samples. Labels are matched exactly after normalization; there is no
// fuzzy or semantic matching.
package phenotype

import (
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
	"trpc.group/trpc-go/trpc-phenoeval-go/report"
)

// LabelSource lists all ground-truth phenotype label strings. Anything with
// this single capability can supply ground truth, a phenopacket.Phenopacket
// being the usual implementation.
type LabelSource interface {
	ListPhenotypes() []string
}

// Evaluator accumulates true positive, false positive and false negative
// counts across repeated CheckPhenotypes calls. It is not safe for
// concurrent use; construct one per experiment.
type Evaluator struct {
	truePositive  int
	falsePositive int
	falseNegative int
	synonyms      map[string]string
}

// New creates an Evaluator with all counters at zero.
func New(opt ...Option) *Evaluator {
	opts := newOptions(opt...)
	return &Evaluator{synonyms: opts.synonyms}
}

// TruePositive returns the total true positives accumulated so far.
func (e *Evaluator) TruePositive() int { return e.truePositive }

// FalsePositive returns the total false positives accumulated so far.
func (e *Evaluator) FalsePositive() int { return e.falsePositive }

// FalseNegative returns the total false negatives accumulated so far.
func (e *Evaluator) FalseNegative() int { return e.falseNegative }

// Confusion returns the accumulated counts as a confusion record.
func (e *Evaluator) Confusion() confusion.Confusion {
	return confusion.Confusion{
		TruePositive:  e.truePositive,
		FalsePositive: e.falsePositive,
		FalseNegative: e.falseNegative,
	}
}

// CheckPhenotypes compares one sample's predicted labels against its ground
// truth and adds the outcome to the running totals. Labels are trimmed,
// lowercased and passed through the synonym map before set comparison;
// duplicates collapse.
func (e *Evaluator) CheckPhenotypes(predicted []string, groundTruth LabelSource) {
	truthSet := e.labelSet(groundTruth.ListPhenotypes())
	predictedSet := e.labelSet(predicted)

	truePositive := 0
	falseNegative := 0
	for label := range truthSet {
		if _, ok := predictedSet[label]; ok {
			truePositive++
		} else {
			falseNegative++
		}
	}
	falsePositive := 0
	for label := range predictedSet {
		if _, ok := truthSet[label]; !ok {
			falsePositive++
		}
	}

	e.truePositive += truePositive
	e.falsePositive += falsePositive
	e.falseNegative += falseNegative

	log.Debugf("phenotype: sample evaluated tp=%d fp=%d fn=%d", truePositive, falsePositive, falseNegative)
}

// Report snapshots the accumulated counts into a report. It does not reset
// the evaluator; a later snapshot after further accumulation reflects the
// grown totals.
func (e *Evaluator) Report(creator, experiment, model string, opt ...report.Option) *report.Report {
	return report.New(e.Confusion(), creator, experiment, model, opt...)
}

// labelSet normalizes labels into a set, applying the synonym map after
// normalization.
func (e *Evaluator) labelSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[e.normalize(label)] = struct{}{}
	}
	return set
}

func (e *Evaluator) normalize(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := e.synonyms[normalized]; ok {
		return canonical
	}
	return normalized
}
