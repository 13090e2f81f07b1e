//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package jsondiff compares JSON-like values structurally and tallies the
// differences into false positive and false negative counts.
//
// A JSON-like value is a map[string]any, a []any, or a scalar
// (string, number, bool, nil), the shapes produced by encoding/json when
// decoding into any.
package jsondiff

import (
	"fmt"
	"reflect"
	"strconv"
)

// Diff compares a reference value against a candidate value and returns the
// diff tree. Keys present only in the candidate are not represented in the
// tree; CountExtraKeys covers those. An error is returned only when the
// inputs nest deeper than the configured depth bound.
func Diff(reference, candidate any, opt ...Option) (*Node, error) {
	opts := newOptions(opt...)
	return diffValue(reference, candidate, 0, opts.maxDepth)
}

func diffValue(reference, candidate any, depth, maxDepth int) (*Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("jsondiff: nesting depth exceeds %d", maxDepth)
	}
	switch ref := reference.(type) {
	case map[string]any:
		cand, ok := candidate.(map[string]any)
		if !ok {
			return valueMismatch(), nil
		}
		return diffObject(ref, cand, depth, maxDepth)
	case []any:
		cand, ok := candidate.([]any)
		if !ok {
			return valueMismatch(), nil
		}
		return diffSequence(ref, cand, depth, maxDepth)
	default:
		if scalarEqual(reference, candidate) {
			return noDiff(), nil
		}
		return valueMismatch(), nil
	}
}

// diffObject marks reference-only keys missing and recurses into shared keys.
func diffObject(reference, candidate map[string]any, depth, maxDepth int) (*Node, error) {
	children := make(map[string]*Node, len(reference))
	clean := true
	for key, refValue := range reference {
		candValue, ok := candidate[key]
		if !ok {
			children[key] = missingKey()
			clean = false
			continue
		}
		child, err := diffValue(refValue, candValue, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		if !child.IsNoDiff() {
			clean = false
		}
		children[key] = child
	}
	if clean {
		return noDiff(), nil
	}
	return &Node{Kind: KindComposite, Children: children}, nil
}

// diffSequence reports a single length mismatch for unequal lengths and
// otherwise recurses elementwise.
func diffSequence(reference, candidate []any, depth, maxDepth int) (*Node, error) {
	if len(reference) != len(candidate) {
		return lengthMismatch(len(reference), len(candidate)), nil
	}
	children := make(map[string]*Node, len(reference))
	clean := true
	for i := range reference {
		child, err := diffValue(reference[i], candidate[i], depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		if !child.IsNoDiff() {
			clean = false
		}
		children[strconv.Itoa(i)] = child
	}
	if clean {
		return noDiff(), nil
	}
	return &Node{Kind: KindComposite, Children: children}, nil
}

// scalarEqual compares scalars with exact type matching, so 1 and "1", or an
// int and a float of equal value, count as a mismatch.
func scalarEqual(reference, candidate any) bool {
	if reference == nil || candidate == nil {
		return reference == nil && candidate == nil
	}
	switch candidate.(type) {
	case map[string]any, []any:
		return false
	}
	return reflect.DeepEqual(reference, candidate)
}
