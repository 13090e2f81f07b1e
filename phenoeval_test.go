//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package phenoeval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore/inmemory"
)

func sampleCases() []*Case {
	return []*Case{
		{
			CaseID:    "1234567",
			Reference: map[string]any{"id": "a", "name": "Alice"},
			Candidate: map[string]any{"id": "a", "name": "Alice"},
		},
		{
			CaseID:    "7654321",
			Reference: map[string]any{"id": "b", "name": "Bob"},
			Candidate: map[string]any{"id": "b"},
		},
		{
			CaseID:    "1111111",
			Reference: map[string]any{"id": "c"},
			Candidate: "the model produced prose instead",
		},
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(WithParallelism(0))
	assert.Error(t, err)
}

func TestEvaluateSequential(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	defer e.Close()

	summary, err := e.Evaluate(context.Background(), sampleCases())
	require.NoError(t, err)

	require.Len(t, summary.Cases, 3)
	assert.Equal(t, confusion.Confusion{TruePositive: 2}, summary.Cases[0].Confusion)
	assert.Equal(t, confusion.Confusion{TruePositive: 1, FalseNegative: 1}, summary.Cases[1].Confusion)
	assert.Equal(t, confusion.Confusion{FalsePositive: 1, FalseNegative: 1}, summary.Cases[2].Confusion)

	assert.Equal(t, confusion.Confusion{TruePositive: 3, FalsePositive: 1, FalseNegative: 2}, summary.Total)
	require.NotNil(t, summary.Metrics.Precision)
	assert.InDelta(t, 0.75, *summary.Metrics.Precision, 1e-9)
	assert.InDelta(t, 0.6, *summary.Metrics.Recall, 1e-9)
}

func TestEvaluateParallelMatchesSequential(t *testing.T) {
	sequential, err := New()
	require.NoError(t, err)
	defer sequential.Close()

	parallel, err := New(WithParallelism(4))
	require.NoError(t, err)
	defer parallel.Close()

	want, err := sequential.Evaluate(context.Background(), sampleCases())
	require.NoError(t, err)
	got, err := parallel.Evaluate(context.Background(), sampleCases())
	require.NoError(t, err)

	assert.Equal(t, want.Total, got.Total)
	assert.Equal(t, want.Metrics, got.Metrics)
	require.Len(t, got.Cases, len(want.Cases))
	for i := range want.Cases {
		assert.Equal(t, want.Cases[i], got.Cases[i])
	}
}

func TestEvaluatePersistsSummaryReport(t *testing.T) {
	store := inmemory.NewManager()
	e, err := New(
		WithReportManager(store),
		WithExperimentInfo("tester", "exp1", "modelA"),
		WithMetadata("prompt_version", "v3"),
	)
	require.NoError(t, err)
	defer e.Close()

	summary, err := e.Evaluate(context.Background(), sampleCases())
	require.NoError(t, err)
	require.NotEmpty(t, summary.ReportID)

	saved, err := store.Get(context.Background(), summary.ReportID)
	require.NoError(t, err)
	assert.Equal(t, summary.Total.Matrix(), saved.ConfusionMatrix)
	assert.Equal(t, "tester", saved.Metadata["creator"])
	assert.Equal(t, "v3", saved.Metadata["prompt_version"])
	assert.EqualValues(t, 3, saved.Metadata["num_cases"])
}

func TestEvaluateSkipsNilCases(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	defer e.Close()

	summary, err := e.Evaluate(context.Background(), []*Case{
		nil,
		{Reference: map[string]any{"x": 1}, Candidate: map[string]any{"x": 1}},
	})
	require.NoError(t, err)
	require.Len(t, summary.Cases, 1)
	assert.Equal(t, "case-1", summary.Cases[0].CaseID)
}

func TestEvaluateCanceledContext(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Evaluate(ctx, sampleCases())
	assert.Error(t, err)
}

func TestEvaluateEmptyCases(t *testing.T) {
	e, err := New(WithUndefinedMetrics())
	require.NoError(t, err)
	defer e.Close()

	summary, err := e.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Cases)
	assert.Nil(t, summary.Metrics.Precision)
}
