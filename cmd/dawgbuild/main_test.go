// main_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package main

import (
	"os"
	"path/filepath"
	"testing"

	dawg "github.com/skraflhugur/dawg"
	"github.com/stretchr/testify/assert"
)

func TestBuildCleanSerialiseReload(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "words.txt")
	outPath := filepath.Join(dir, "words.dawg")

	assert.NoError(t, os.WriteFile(listPath, []byte("cat\ncats\ncut\ncuts\n\ndog\n"), 0o644))

	words, err := readWords(listPath)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "cats", "cut", "cuts", "dog"}, words, "blank lines are skipped")

	g := dawg.From(words...)
	g.Clean()
	nodeCount := g.Len()
	assert.NoError(t, writeGraph(g, outPath, false))

	f, err := os.Open(outPath)
	assert.NoError(t, err)
	defer f.Close()

	back, err := dawg.ReadCompactGraph(f, nodeCount)
	assert.NoError(t, err)

	var got []string
	for w := range dawg.Words(back) {
		got = append(got, w)
	}
	assert.Equal(t, words, got)
}

func TestWriteGraphRejectsUncleanedTrie(t *testing.T) {
	// A freshly built trie has non-contiguous children, so the compact
	// downcast inside writeGraph must refuse it.
	g := dawg.From("cat", "cut", "cuts")
	err := writeGraph(g, filepath.Join(t.TempDir(), "bad.dawg"), false)
	assert.ErrorIs(t, err, dawg.ErrNonContiguous)
}

func TestWriteGraphWideSkipsContiguityCheck(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "wide.dawg")

	g := dawg.From("cat", "cut", "cuts")
	assert.NoError(t, writeGraph(g, outPath, true))

	f, err := os.Open(outPath)
	assert.NoError(t, err)
	defer f.Close()

	back, err := dawg.ReadFlatGraph(f, g.Len())
	assert.NoError(t, err)

	var got []string
	for w := range dawg.Words(back) {
		got = append(got, w)
	}
	assert.Equal(t, []string{"cat", "cut", "cuts"}, got)
}
