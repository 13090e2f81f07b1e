//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package phenopacket reads GA4GH phenopacket JSON documents and answers
// label queries against their phenotypic features. The document is kept as
// decoded JSON rather than a typed struct: ground-truth files in the wild
// contain malformed feature entries that must be skipped per entry, and the
// raw document has to reach the scorer unmodified.
package phenopacket

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// ErrInvalidPhenopacket reports JSON that does not meet the minimal
// phenopacket shape: a top-level object whose phenotypicFeatures, when
// present, is an array.
var ErrInvalidPhenopacket = errors.New("invalid phenopacket")

// Phenopacket wraps a decoded phenopacket JSON document.
type Phenopacket struct {
	doc      map[string]any
	features []any
}

// New wraps an already-decoded document.
func New(doc map[string]any) (*Phenopacket, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document must be an object", ErrInvalidPhenopacket)
	}
	features := []any{}
	if raw, ok := doc["phenotypicFeatures"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: phenotypicFeatures must be an array", ErrInvalidPhenopacket)
		}
		features = list
	}
	return &Phenopacket{doc: doc, features: features}, nil
}

// Parse decodes phenopacket JSON bytes.
func Parse(data []byte) (*Phenopacket, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhenopacket, err)
	}
	return New(doc)
}

// LoadFile reads and decodes a phenopacket JSON file.
func LoadFile(path string) (*Phenopacket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

// ListPhenotypes returns the human-readable label of every phenotypic
// feature, skipping malformed entries.
func (p *Phenopacket) ListPhenotypes() []string {
	labels := make([]string, 0, len(p.features))
	for _, feature := range p.features {
		term, ok := featureType(feature)
		if !ok {
			log.Warnf("phenopacket: skipping malformed phenotypicFeature without type object")
			continue
		}
		label, ok := term["label"].(string)
		if !ok {
			log.Warnf("phenopacket: skipping phenotypicFeature without type.label")
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// ContainsPhenotype reports whether any feature carries the given
// human-readable label.
func (p *Phenopacket) ContainsPhenotype(label string) bool {
	for _, feature := range p.features {
		if term, ok := featureType(feature); ok && term["label"] == label {
			return true
		}
	}
	return false
}

// ContainsPhenotypeID reports whether any feature carries the given HPO
// identifier, e.g. "HP:0001250".
func (p *Phenopacket) ContainsPhenotypeID(id string) bool {
	for _, feature := range p.features {
		if term, ok := featureType(feature); ok && term["id"] == id {
			return true
		}
	}
	return false
}

// CountPhenotypes returns the number of phenotypic feature entries.
func (p *Phenopacket) CountPhenotypes() int {
	return len(p.features)
}

// Document returns the raw decoded JSON, the form the scorer consumes.
func (p *Phenopacket) Document() map[string]any {
	return p.doc
}

// String summarizes the packet for logs and debugging.
func (p *Phenopacket) String() string {
	plural := "s"
	if len(p.features) == 1 {
		plural = ""
	}
	return fmt.Sprintf("Phenopacket with %d phenotypic feature%s", len(p.features), plural)
}

// featureType extracts the type object from a feature entry.
func featureType(feature any) (map[string]any, bool) {
	obj, ok := feature.(map[string]any)
	if !ok {
		return nil, false
	}
	term, ok := obj["type"].(map[string]any)
	return term, ok
}
