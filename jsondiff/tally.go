//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package jsondiff

// Tally walks a diff tree and converts it into false positive and false
// negative counts. A wrong value is both a false positive and a false
// negative, a missing key only a false negative, and a length mismatch
// yields one count per surplus or missing element.
func Tally(node *Node) (fp, fn int) {
	if node == nil {
		return 0, 0
	}
	switch node.Kind {
	case KindNoDiff:
		return 0, 0
	case KindValueMismatch:
		return 1, 1
	case KindMissingKey:
		return 0, 1
	case KindLengthMismatch:
		if node.Received > node.Expected {
			return node.Received - node.Expected, 0
		}
		return 0, node.Expected - node.Received
	case KindComposite:
		for _, child := range node.Children {
			childFP, childFN := Tally(child)
			fp += childFP
			fn += childFN
		}
		return fp, fn
	default:
		return 0, 0
	}
}
