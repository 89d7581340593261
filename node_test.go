// node_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package dawg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideNodePutHasGet(t *testing.T) {
	var w WideNode
	assert.True(t, w.IsEmpty())
	assert.False(t, w.IsEnd())

	w.Put(SymbolOf('a'), 3)
	w.Put(SymbolOf('z'), 7)
	w.SetEnd(true)

	assert.False(t, w.IsEmpty())
	assert.True(t, w.IsEnd())
	assert.True(t, w.Has(SymbolOf('a')))
	assert.False(t, w.Has(SymbolOf('b')))

	idx, ok := w.Get(SymbolOf('z'))
	assert.True(t, ok)
	assert.Equal(t, 7, idx)

	w.Delete(SymbolOf('a'))
	assert.False(t, w.Has(SymbolOf('a')))
}

func TestWideNodeChildrenAscending(t *testing.T) {
	var w WideNode
	w.Put(SymbolOf('z'), 1)
	w.Put(SymbolOf('a'), 2)
	w.Put(SymbolOf('m'), 3)

	var syms []uint8
	for sym := range w.Children() {
		syms = append(syms, sym)
	}
	assert.Equal(t, []uint8{SymbolOf('a'), SymbolOf('m'), SymbolOf('z')}, syms)
}

func TestCompactNodeContiguousConversion(t *testing.T) {
	var w WideNode
	w.SetEnd(true)
	w.Put(SymbolOf('a'), 5)
	w.Put(SymbolOf('b'), 6)
	w.Put(SymbolOf('c'), 7)

	c, err := w.ToCompact()
	assert.NoError(t, err)
	assert.Equal(t, 5, c.BaseIndex)
	assert.True(t, c.IsEnd())
	assert.Equal(t, 3, c.Len())

	idx, ok := c.Get(SymbolOf('b'))
	assert.True(t, ok)
	assert.Equal(t, 6, idx)

	back := c.ToWide()
	assert.Equal(t, w, back)
}

func TestCompactNodeNonContiguousConversion(t *testing.T) {
	var w WideNode
	w.Put(SymbolOf('a'), 5)
	w.Put(SymbolOf('b'), 9) // breaks contiguity

	_, err := w.ToCompact()
	assert.ErrorIs(t, err, ErrNonContiguous)
}

func TestCompactNodeEmptyIgnoresEndFlag(t *testing.T) {
	n := CompactNode{Mask: endMask}
	assert.True(t, n.IsEnd())
	assert.True(t, n.IsEmpty(), "emptiness only describes children, not the accepting flag")
}

func TestNextSymbol(t *testing.T) {
	var w WideNode
	w.Put(SymbolOf('c'), 1)
	w.Put(SymbolOf('m'), 2)
	w.Put(SymbolOf('z'), 3)

	for _, n := range []ReadNode{w, CompactNode{BaseIndex: 1, Mask: 1<<2 | 1<<12 | 1<<25}} {
		sym, ok := n.NextSymbol(0)
		assert.True(t, ok)
		assert.Equal(t, SymbolOf('c'), sym)

		sym, ok = n.NextSymbol(SymbolOf('c'))
		assert.True(t, ok)
		assert.Equal(t, SymbolOf('c'), sym, "an exact hit returns the symbol itself")

		sym, ok = n.NextSymbol(SymbolOf('d'))
		assert.True(t, ok)
		assert.Equal(t, SymbolOf('m'), sym)

		sym, ok = n.NextSymbol(SymbolOf('z'))
		assert.True(t, ok)
		assert.Equal(t, SymbolOf('z'), sym)

		_, ok = CompactNode{}.NextSymbol(0)
		assert.False(t, ok)
	}
}

func TestNextSymbolIgnoresEndBit(t *testing.T) {
	n := CompactNode{Mask: endMask}
	_, ok := n.NextSymbol(0)
	assert.False(t, ok, "the accepting bit must not read as a 27th child")
}

func TestSymbolsAscending(t *testing.T) {
	var w WideNode
	w.Put(SymbolOf('q'), 1)
	w.Put(SymbolOf('b'), 2)

	var syms []uint8
	for sym := range Symbols(w) {
		syms = append(syms, sym)
	}
	assert.Equal(t, []uint8{SymbolOf('b'), SymbolOf('q')}, syms)
}
