//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package confusion provides confusion counts and the metrics derived from
// them. True negatives are not tracked: in free-form extraction the
// not-extracted, not-true space is unbounded, so the matrix slot is pinned
// to zero for shape consistency only.
package confusion

// Confusion holds true positive, false positive and false negative counts
// for one comparison or an accumulation of comparisons.
type Confusion struct {
	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
	FalseNegative int `json:"false_negative"`
}

// Add returns the elementwise sum of two confusion records.
func (c Confusion) Add(other Confusion) Confusion {
	return Confusion{
		TruePositive:  c.TruePositive + other.TruePositive,
		FalsePositive: c.FalsePositive + other.FalsePositive,
		FalseNegative: c.FalseNegative + other.FalseNegative,
	}
}

// Matrix returns the 2x2 confusion matrix [[TP, FP], [FN, 0]].
func (c Confusion) Matrix() [][]int {
	return [][]int{
		{c.TruePositive, c.FalsePositive},
		{c.FalseNegative, 0},
	}
}
