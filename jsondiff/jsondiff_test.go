//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package jsondiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffEqualValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "scalar", value: "text"},
		{name: "nil", value: nil},
		{name: "empty object", value: map[string]any{}},
		{name: "empty sequence", value: []any{}},
		{name: "nested", value: map[string]any{
			"id":   1,
			"tags": []any{"a", "b"},
			"type": map[string]any{"id": "HP:0001250", "label": "Seizure"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Diff(tt.value, tt.value)
			require.NoError(t, err)
			assert.True(t, node.IsNoDiff())
		})
	}
}

func TestDiffMissingKey(t *testing.T) {
	ref := map[string]any{"id": 1, "name": "Alice"}
	cand := map[string]any{"id": 1}

	node, err := Diff(ref, cand)
	require.NoError(t, err)

	want := &Node{Kind: KindComposite, Children: map[string]*Node{
		"id":   {Kind: KindNoDiff},
		"name": {Kind: KindMissingKey},
	}}
	assert.Empty(t, cmp.Diff(want, node))
}

func TestDiffValueAndTypeMismatch(t *testing.T) {
	tests := []struct {
		name      string
		reference any
		candidate any
	}{
		{name: "scalar values differ", reference: 1, candidate: 2},
		{name: "scalar types differ", reference: 1, candidate: "1"},
		{name: "object vs sequence", reference: map[string]any{}, candidate: []any{}},
		{name: "object vs scalar", reference: map[string]any{"a": 1}, candidate: "a"},
		{name: "sequence vs scalar", reference: []any{1}, candidate: 1.0},
		{name: "nil vs scalar", reference: nil, candidate: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Diff(tt.reference, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, KindValueMismatch, node.Kind)
		})
	}
}

func TestDiffSequenceLengthMismatch(t *testing.T) {
	node, err := Diff([]any{1, 2, 3}, []any{1, 2})
	require.NoError(t, err)
	want := &Node{Kind: KindLengthMismatch, Expected: 3, Received: 2}
	assert.Empty(t, cmp.Diff(want, node))

	// Elements behind the mismatch are not inspected.
	assert.Nil(t, node.Children)
}

func TestDiffSequenceElementwise(t *testing.T) {
	node, err := Diff([]any{1, 2}, []any{1, 3})
	require.NoError(t, err)
	want := &Node{Kind: KindComposite, Children: map[string]*Node{
		"0": {Kind: KindNoDiff},
		"1": {Kind: KindValueMismatch},
	}}
	assert.Empty(t, cmp.Diff(want, node))
}

func TestDiffNestedComposite(t *testing.T) {
	ref := map[string]any{
		"subject": map[string]any{"id": "p1", "sex": "FEMALE"},
		"ok":      true,
	}
	cand := map[string]any{
		"subject": map[string]any{"id": "p1", "sex": "MALE"},
		"ok":      true,
	}
	node, err := Diff(ref, cand)
	require.NoError(t, err)
	want := &Node{Kind: KindComposite, Children: map[string]*Node{
		"ok": {Kind: KindNoDiff},
		"subject": {Kind: KindComposite, Children: map[string]*Node{
			"id":  {Kind: KindNoDiff},
			"sex": {Kind: KindValueMismatch},
		}},
	}}
	assert.Empty(t, cmp.Diff(want, node))
}

func TestDiffCandidateOnlyKeysIgnored(t *testing.T) {
	ref := map[string]any{"x": 1}
	cand := map[string]any{"x": 1, "y": 2}

	node, err := Diff(ref, cand)
	require.NoError(t, err)
	assert.True(t, node.IsNoDiff())
}

func TestDiffDepthBound(t *testing.T) {
	deep := any("leaf")
	for i := 0; i < 20; i++ {
		deep = map[string]any{"child": deep}
	}

	_, err := Diff(deep, deep, WithMaxDepth(5))
	assert.Error(t, err)

	node, err := Diff(deep, deep, WithMaxDepth(50))
	require.NoError(t, err)
	assert.True(t, node.IsNoDiff())
}

func TestCountLeaves(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "scalar", value: 42, want: 1},
		{name: "nil scalar", value: nil, want: 1},
		{name: "empty object", value: map[string]any{}, want: 1},
		{name: "empty sequence", value: []any{}, want: 0},
		{name: "mixed", value: map[string]any{"a": 1, "b": []any{2, 3}, "c": map[string]any{}}, want: 4},
		{name: "sequence of objects", value: []any{map[string]any{"k": 1}, map[string]any{"m": 2, "n": 3}}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLeaves(tt.value))
		})
	}
}

func TestCountExtraKeys(t *testing.T) {
	tests := []struct {
		name      string
		reference any
		candidate any
		want      int
	}{
		{
			name:      "top level extra",
			reference: map[string]any{"x": 1},
			candidate: map[string]any{"x": 1, "y": 2},
			want:      1,
		},
		{
			name:      "nested and top level",
			reference: map[string]any{"a": map[string]any{"b": 1}},
			candidate: map[string]any{"a": map[string]any{"b": 1, "c": 2}, "d": 3},
			want:      2,
		},
		{
			name:      "list of objects",
			reference: []any{map[string]any{"k": 1}, map[string]any{"m": 2}},
			candidate: []any{map[string]any{"k": 1}, map[string]any{"m": 2, "n": 3}},
			want:      1,
		},
		{
			name:      "reference only keys ignored",
			reference: map[string]any{"x": 1, "y": 2},
			candidate: map[string]any{"x": 1},
			want:      0,
		},
		{
			name:      "trailing candidate elements ignored",
			reference: []any{map[string]any{"k": 1}},
			candidate: []any{map[string]any{"k": 1}, map[string]any{"extra": 2}},
			want:      0,
		},
		{
			name:      "type mismatch contributes nothing",
			reference: map[string]any{"x": 1},
			candidate: "not json",
			want:      0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountExtraKeys(tt.reference, tt.candidate))
		})
	}
}

func TestTally(t *testing.T) {
	tests := []struct {
		name   string
		node   *Node
		wantFP int
		wantFN int
	}{
		{name: "nil node", node: nil, wantFP: 0, wantFN: 0},
		{name: "no diff", node: &Node{Kind: KindNoDiff}, wantFP: 0, wantFN: 0},
		{name: "value mismatch", node: &Node{Kind: KindValueMismatch}, wantFP: 1, wantFN: 1},
		{name: "missing key", node: &Node{Kind: KindMissingKey}, wantFP: 0, wantFN: 1},
		{name: "shorter candidate", node: &Node{Kind: KindLengthMismatch, Expected: 3, Received: 2}, wantFP: 0, wantFN: 1},
		{name: "longer candidate", node: &Node{Kind: KindLengthMismatch, Expected: 2, Received: 4}, wantFP: 2, wantFN: 0},
		{name: "equal lengths", node: &Node{Kind: KindLengthMismatch, Expected: 2, Received: 2}, wantFP: 0, wantFN: 0},
		{
			name: "composite sums children",
			node: &Node{Kind: KindComposite, Children: map[string]*Node{
				"x": {Kind: KindValueMismatch},
				"y": {Kind: KindMissingKey},
				"z": {Kind: KindNoDiff},
			}},
			wantFP: 1,
			wantFN: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, fn := Tally(tt.node)
			assert.Equal(t, tt.wantFP, fp)
			assert.Equal(t, tt.wantFN, fn)
		})
	}
}

func TestTallyFromDiff(t *testing.T) {
	// One wrong value and one missing key.
	node, err := Diff(map[string]any{"x": 1, "y": 2}, map[string]any{"x": 99})
	require.NoError(t, err)
	fp, fn := Tally(node)
	assert.Equal(t, 1, fp)
	assert.Equal(t, 2, fn)

	node, err = Diff([]any{1, 2, 3}, []any{1, 2})
	require.NoError(t, err)
	fp, fn = Tally(node)
	assert.Equal(t, 0, fp)
	assert.Equal(t, 1, fn)

	node, err = Diff([]any{1, 2}, []any{1, 2, 3, 4})
	require.NoError(t, err)
	fp, fn = Tally(node)
	assert.Equal(t, 2, fp)
	assert.Equal(t, 0, fn)
}
