//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package jsondiff

// Kind identifies the outcome of comparing a reference value against a
// candidate value at one path.
type Kind int

const (
	// KindNoDiff means reference and candidate are equal at this path and below.
	KindNoDiff Kind = iota
	// KindValueMismatch means the scalar values or the value types disagree.
	KindValueMismatch
	// KindMissingKey means a reference key is absent from the candidate.
	KindMissingKey
	// KindLengthMismatch means two sequences have different lengths.
	KindLengthMismatch
	// KindComposite is a non-terminal node holding per-child results.
	KindComposite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNoDiff:
		return "no_diff"
	case KindValueMismatch:
		return "value_mismatch"
	case KindMissingKey:
		return "missing_key"
	case KindLengthMismatch:
		return "length_mismatch"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Node is one node of a structural diff tree. Expected and Received are set
// only for length mismatches; Children only for composite nodes, keyed by
// object key or sequence index.
type Node struct {
	Kind     Kind             `json:"kind"`
	Expected int              `json:"expected,omitempty"`
	Received int              `json:"received,omitempty"`
	Children map[string]*Node `json:"children,omitempty"`
}

// IsNoDiff reports whether the node records no difference. A nil node counts
// as no difference.
func (n *Node) IsNoDiff() bool {
	return n == nil || n.Kind == KindNoDiff
}

func noDiff() *Node {
	return &Node{Kind: KindNoDiff}
}

func valueMismatch() *Node {
	return &Node{Kind: KindValueMismatch}
}

func missingKey() *Node {
	return &Node{Kind: KindMissingKey}
}

func lengthMismatch(expected, received int) *Node {
	return &Node{Kind: KindLengthMismatch, Expected: expected, Received: received}
}
