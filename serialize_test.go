// serialize_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package dawg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactNodeBinaryRoundTrip(t *testing.T) {
	cases := []CompactNode{
		{},
		{Mask: endMask},
		{BaseIndex: 5, Mask: 0b111 | endMask},
		{BaseIndex: 0, Mask: defaultMask},
	}
	for _, n := range cases {
		data, err := n.MarshalBinary()
		assert.NoError(t, err)

		var back CompactNode
		assert.NoError(t, back.UnmarshalBinary(data))
		assert.Equal(t, n, back)
	}
}

func TestCompactNodeDefaultElidesBothFields(t *testing.T) {
	n := CompactNode{BaseIndex: 0, Mask: defaultMask}
	assert.True(t, n.IsDefault())

	data, err := n.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0}, data, "a fully default node is just its zero presence byte")
}

func TestCompactNodePartialElision(t *testing.T) {
	n := CompactNode{BaseIndex: 9, Mask: defaultMask}
	data, err := n.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, 1+8, "only the base index field should be carried")

	var back CompactNode
	assert.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, n, back)
}

func TestWideNodeBinaryRoundTrip(t *testing.T) {
	var w WideNode
	w.SetEnd(true)
	w.Put(SymbolOf('a'), 3)
	w.Put(SymbolOf('z'), 99)

	data, err := w.MarshalBinary()
	assert.NoError(t, err)

	var back WideNode
	assert.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, w, back)
}

func TestWriteReadCompactGraphRoundTrip(t *testing.T) {
	g := From("cat", "cats", "cut", "cuts")
	g.Clean()
	cg, err := g.ToCompact()
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteCompactGraph(&buf, cg))

	back, err := ReadCompactGraph(&buf, cg.Len())
	assert.NoError(t, err)
	assert.Equal(t, wordsOf(g), wordsOf(back.ToFlat()))
}

func TestWriteCompactGraphElidesDefaultNodes(t *testing.T) {
	cg := &CompactGraph{}
	// Directly construct a graph whose sole node is a default node, to
	// confirm it collapses to a single presence byte on the wire.
	cgNodes := []CompactNode{{Mask: defaultMask}}
	*cg = CompactGraph{nodes: cgNodes}

	var buf bytes.Buffer
	assert.NoError(t, WriteCompactGraph(&buf, cg))
	assert.Equal(t, 1, buf.Len())

	back, err := ReadCompactGraph(&buf, 1)
	assert.NoError(t, err)
	assert.Equal(t, cgNodes, back.nodes)
}

func TestWriteReadFlatGraphRoundTrip(t *testing.T) {
	// The wide layout has no contiguity requirement, so an uncleaned trie
	// survives the trip unchanged.
	g := From("cat", "cut", "cuts")

	var buf bytes.Buffer
	assert.NoError(t, WriteFlatGraph(&buf, g))
	assert.Equal(t, g.Len()*(1+AlphaChars*8), buf.Len(), "wide records are fixed-length")

	back, err := ReadFlatGraph(&buf, g.Len())
	assert.NoError(t, err)
	assert.Equal(t, wordsOf(g), wordsOf(back))
}

func TestReadFlatGraphRejectsZeroLength(t *testing.T) {
	var buf bytes.Buffer
	_, err := ReadFlatGraph(&buf, 0)
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestReadCompactGraphRejectsZeroLength(t *testing.T) {
	var buf bytes.Buffer
	_, err := ReadCompactGraph(&buf, 0)
	assert.ErrorIs(t, err, ErrEmptyGraph, "a graph needs at least a root slot")
}

func TestUnmarshalBinaryRejectsReservedBits(t *testing.T) {
	n := CompactNode{Mask: 1 << 30}
	data, err := n.MarshalBinary()
	assert.NoError(t, err)

	var back CompactNode
	assert.ErrorIs(t, back.UnmarshalBinary(data), ErrBadSerialization)
}
