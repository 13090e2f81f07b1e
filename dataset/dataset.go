//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package dataset pairs candidate extractions with ground-truth documents
// by the 7-digit PMID embedded in their file names and loads the pairs as
// evaluation cases.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"trpc.group/trpc-go/trpc-agent-go/log"
	phenoeval "trpc.group/trpc-go/trpc-phenoeval-go"
	"trpc.group/trpc-go/trpc-phenoeval-go/scorer"
)

var pmidPattern = regexp.MustCompile(`\d{7}`)

// Pair joins one candidate file with one reference file that carry the
// same PMID.
type Pair struct {
	PMID          string
	CandidatePath string
	ReferencePath string
}

// Discover scans the candidate and reference directories and returns every
// candidate/reference file pair sharing a PMID, ordered by PMID. File names
// must contain exactly one 7-digit PMID; others are skipped with a warning.
// A PMID appearing in several files on one side yields one pair per
// combination.
func Discover(candidateDir, referenceDir string, opt ...Option) ([]Pair, error) {
	opts := newOptions(opt...)
	candidates, err := filesByPMID(candidateDir, opts.recursiveCandidates)
	if err != nil {
		return nil, fmt.Errorf("scan candidate dir: %w", err)
	}
	references, err := filesByPMID(referenceDir, opts.recursiveReferences)
	if err != nil {
		return nil, fmt.Errorf("scan reference dir: %w", err)
	}

	pmids := make([]string, 0, len(candidates))
	for pmid := range candidates {
		if _, ok := references[pmid]; ok {
			pmids = append(pmids, pmid)
		}
	}
	sort.Strings(pmids)

	var pairs []Pair
	for _, pmid := range pmids {
		for _, refPath := range references[pmid] {
			for _, candPath := range candidates[pmid] {
				pairs = append(pairs, Pair{
					PMID:          pmid,
					CandidatePath: candPath,
					ReferencePath: refPath,
				})
			}
		}
	}
	return pairs, nil
}

// LoadCases discovers the pairs under the two directories and loads each
// one into an evaluation case. References must be valid JSON; candidates
// that fail to parse enter the case as their raw string so scoring treats
// them as a total failure.
func LoadCases(candidateDir, referenceDir string, opt ...Option) ([]*phenoeval.Case, error) {
	pairs, err := Discover(candidateDir, referenceDir, opt...)
	if err != nil {
		return nil, err
	}
	cases := make([]*phenoeval.Case, 0, len(pairs))
	for _, pair := range pairs {
		evalCase, err := loadCase(pair)
		if err != nil {
			return nil, err
		}
		cases = append(cases, evalCase)
	}
	return cases, nil
}

func loadCase(pair Pair) (*phenoeval.Case, error) {
	refData, err := os.ReadFile(pair.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("read reference %s: %w", pair.ReferencePath, err)
	}
	var reference any
	if err := json.Unmarshal(refData, &reference); err != nil {
		return nil, fmt.Errorf("parse reference %s: %w", pair.ReferencePath, err)
	}
	candData, err := os.ReadFile(pair.CandidatePath)
	if err != nil {
		return nil, fmt.Errorf("read candidate %s: %w", pair.CandidatePath, err)
	}
	return &phenoeval.Case{
		CaseID:    pair.PMID,
		Reference: reference,
		Candidate: scorer.ParseCandidate(candData),
	}, nil
}

// filesByPMID indexes the files under dir by the single PMID in their
// names. Without recursion only the top level is scanned.
func filesByPMID(dir string, recursive bool) (map[string][]string, error) {
	byPMID := make(map[string][]string)
	add := func(path, name string) {
		matches := pmidPattern.FindAllString(name, -1)
		if len(matches) != 1 {
			log.Warnf("dataset: expected exactly one PMID in %s, found %d, skipping", name, len(matches))
			return
		}
		byPMID[matches[0]] = append(byPMID[matches[0]], path)
	}

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			add(filepath.Join(dir, entry.Name()), entry.Name())
		}
		return byPMID, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		add(path, d.Name())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return byPMID, nil
}
