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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
)

type staticSource []string

func (s staticSource) ListPhenotypes() []string { return s }

func TestCheckPhenotypesNormalization(t *testing.T) {
	e := New()
	e.CheckPhenotypes([]string{" PHEN1 ", "phen2"}, staticSource{"Phen1", "Phen2"})
	assert.Equal(t, confusion.Confusion{TruePositive: 2}, e.Confusion())
}

func TestCheckPhenotypesCounts(t *testing.T) {
	e := New()
	e.CheckPhenotypes(
		[]string{"seizure", "fever", "hallucinated finding"},
		staticSource{"Seizure", "Fever", "Micrognathia"},
	)
	assert.Equal(t, 2, e.TruePositive())
	assert.Equal(t, 1, e.FalsePositive())
	assert.Equal(t, 1, e.FalseNegative())
}

func TestCheckPhenotypesAccumulates(t *testing.T) {
	e := New()
	e.CheckPhenotypes([]string{"seizure"}, staticSource{"Seizure", "Fever"})
	e.CheckPhenotypes([]string{"fever", "rash"}, staticSource{"Fever"})

	assert.Equal(t, confusion.Confusion{
		TruePositive:  2,
		FalsePositive: 1,
		FalseNegative: 1,
	}, e.Confusion())

	// A report taken after both samples reflects the sum.
	r := e.Report("tester", "exp", "model")
	assert.Equal(t, [][]int{{2, 1}, {1, 0}}, r.ConfusionMatrix)

	// Reporting does not reset the accumulator.
	e.CheckPhenotypes([]string{"seizure"}, staticSource{"Seizure"})
	assert.Equal(t, 3, e.TruePositive())
}

func TestCheckPhenotypesDuplicatesCollapse(t *testing.T) {
	e := New()
	e.CheckPhenotypes([]string{"seizure", "Seizure", " SEIZURE "}, staticSource{"Seizure"})
	assert.Equal(t, confusion.Confusion{TruePositive: 1}, e.Confusion())
}

func TestSynonymMapping(t *testing.T) {
	e := New(WithSynonyms(map[string]string{"Fits": "Seizure"}))
	e.CheckPhenotypes([]string{"fits"}, staticSource{"Seizure"})
	assert.Equal(t, confusion.Confusion{TruePositive: 1}, e.Confusion())

	// Labels without a mapping entry pass through unmapped.
	e.CheckPhenotypes([]string{"fever"}, staticSource{"Fever"})
	assert.Equal(t, 2, e.TruePositive())
}

func TestLoadSynonyms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Fits: Seizure\nPyrexia: Fever\n"), 0o644))

	synonyms, err := LoadSynonyms(path)
	require.NoError(t, err)

	e := New(WithSynonyms(synonyms))
	e.CheckPhenotypes([]string{"fits", "pyrexia"}, staticSource{"Seizure", "Fever"})
	assert.Equal(t, confusion.Confusion{TruePositive: 2}, e.Confusion())
}

func TestLoadSynonymsErrors(t *testing.T) {
	_, err := LoadSynonyms(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n-:"), 0o644))
	_, err = LoadSynonyms(path)
	assert.Error(t, err)
}
