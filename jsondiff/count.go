//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package jsondiff

// CountLeaves counts the leaf fields of a JSON-like value. An empty map
// counts as one leaf (a field with no children is still a field), an empty
// sequence counts as zero, any scalar counts as one, and containers sum
// their children.
func CountLeaves(value any) int {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			return 1
		}
		total := 0
		for _, child := range v {
			total += CountLeaves(child)
		}
		return total
	case []any:
		total := 0
		for _, child := range v {
			total += CountLeaves(child)
		}
		return total
	default:
		return 1
	}
}

// CountExtraKeys counts keys present in the candidate but absent from the
// reference, at every shared nesting level. Sequences recurse pairwise up to
// the shorter length; trailing candidate elements are length-mismatch
// territory and are not counted here. Type mismatches and scalars contribute
// nothing, those are counted by the diff path.
func CountExtraKeys(reference, candidate any) int {
	extra := 0
	switch ref := reference.(type) {
	case map[string]any:
		cand, ok := candidate.(map[string]any)
		if !ok {
			return 0
		}
		for key, candValue := range cand {
			refValue, shared := ref[key]
			if !shared {
				extra++
				continue
			}
			extra += CountExtraKeys(refValue, candValue)
		}
	case []any:
		cand, ok := candidate.([]any)
		if !ok {
			return 0
		}
		n := len(ref)
		if len(cand) < n {
			n = len(cand)
		}
		for i := 0; i < n; i++ {
			extra += CountExtraKeys(ref[i], cand[i])
		}
	}
	return extra
}
