//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package phenotype

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type options struct {
	synonyms map[string]string
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Evaluator.
type Option func(*options)

// WithSynonyms maps normalized labels to canonical forms. Keys and values
// are themselves normalized (trimmed, lowercased) so the map behaves the
// same way the labels do.
func WithSynonyms(synonyms map[string]string) Option {
	return func(o *options) {
		if len(synonyms) == 0 {
			return
		}
		if o.synonyms == nil {
			o.synonyms = make(map[string]string, len(synonyms))
		}
		for key, value := range synonyms {
			o.synonyms[normalizeEntry(key)] = normalizeEntry(value)
		}
	}
}

// LoadSynonyms reads a YAML file mapping labels to canonical labels, for use
// with WithSynonyms.
func LoadSynonyms(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var synonyms map[string]string
	if err := yaml.Unmarshal(data, &synonyms); err != nil {
		return nil, fmt.Errorf("parse synonym map %s: %w", path, err)
	}
	return synonyms, nil
}

func normalizeEntry(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
