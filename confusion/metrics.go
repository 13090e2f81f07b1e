//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package confusion

// Metrics holds precision, recall and F1 derived from a confusion record.
// Fields are pointers so an undefined metric (zero denominator under the
// undefined fallback) serializes as JSON null rather than a misleading zero.
type Metrics struct {
	Precision *float64 `json:"precision"`
	Recall    *float64 `json:"recall"`
	F1        *float64 `json:"f1"`
}

// Compute derives precision, recall and F1 from a confusion record. When a
// denominator is zero the configured zero-division fallback is used, 0.0 by
// default.
func Compute(c Confusion, opt ...Option) Metrics {
	opts := NewOptions(opt...)
	precision := ratio(c.TruePositive, c.TruePositive+c.FalsePositive, opts.ZeroDivision)
	recall := ratio(c.TruePositive, c.TruePositive+c.FalseNegative, opts.ZeroDivision)
	return Metrics{
		Precision: precision,
		Recall:    recall,
		F1:        fMeasure(precision, recall, opts.ZeroDivision),
	}
}

// ratio returns num/den, or a copy of the fallback when den is zero.
func ratio(num, den int, fallback *float64) *float64 {
	if den > 0 {
		v := float64(num) / float64(den)
		return &v
	}
	return copyFallback(fallback)
}

// fMeasure returns the harmonic mean of precision and recall, or the
// fallback when the sum is zero or either input is undefined.
func fMeasure(precision, recall, fallback *float64) *float64 {
	if precision == nil || recall == nil || *precision+*recall <= 0 {
		return copyFallback(fallback)
	}
	v := 2 * *precision * *recall / (*precision + *recall)
	return &v
}

func copyFallback(fallback *float64) *float64 {
	if fallback == nil {
		return nil
	}
	v := *fallback
	return &v
}
