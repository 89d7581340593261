// node.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package dawg

import "iter"

// ReadNode is the read-only view the concrete node representations
// (CompactNode and WideNode) present to the rest of the engine; the
// combinator nodes present the Cursor view instead.
// An index stored in a node is always an index into the owning FlatGraph's
// node slice, not a pointer; slot 0 of any graph is its root.
type ReadNode interface {
	// IsEnd reports whether the empty suffix is accepted at this node,
	// i.e. whether a word ends here.
	IsEnd() bool

	// IsEmpty reports whether this node has no outgoing edges. Note this
	// is independent of IsEnd: a node with IsEnd() true and no children
	// still reports IsEmpty() true, since emptiness here describes the
	// shape of the node, not the language it accepts at this point.
	IsEmpty() bool

	// Has reports whether there is an outgoing edge labelled c.
	Has(c uint8) bool

	// Get returns the target node index of the edge labelled c, and
	// whether that edge exists.
	Get(c uint8) (idx int, ok bool)

	// NextSymbol returns the smallest present symbol >= c, if any. It is
	// the primitive the symbol/child iterators are built on; CompactNode
	// answers it in constant time from its bitmask.
	NextSymbol(c uint8) (uint8, bool)

	// Children iterates the (symbol, target index) pairs of all outgoing
	// edges in ascending symbol order.
	Children() iter.Seq2[uint8, int]

	// Len returns the number of outgoing edges.
	Len() int
}

// WriteNode is implemented by node representations that can be mutated
// in place — in practice only WideNode. CompactNode stays read-only
// because edge edits could break its contiguity encoding, and the
// combinator nodes are views with nothing of their own to mutate.
type WriteNode interface {
	ReadNode

	// SetEnd sets whether the empty suffix is accepted here.
	SetEnd(end bool)

	// Put creates or retargets the edge labelled c to point at idx.
	Put(c uint8, idx int)

	// Delete removes the edge labelled c, if present.
	Delete(c uint8)
}

// scanNextSymbol is the linear-scan NextSymbol shared by the node shapes
// that have no bitmask to take a shortcut through.
func scanNextSymbol(n interface{ Has(c uint8) bool }, c uint8) (uint8, bool) {
	for ; c < AlphaChars; c++ {
		if n.Has(c) {
			return c, true
		}
	}
	return 0, false
}

// Symbols iterates n's present symbols in ascending order.
func Symbols(n ReadNode) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for c, ok := n.NextSymbol(0); ok; c, ok = n.NextSymbol(c + 1) {
			if !yield(c) {
				return
			}
		}
	}
}

// Indexes iterates n's child target indices in ascending symbol order.
func Indexes(n ReadNode) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, idx := range n.Children() {
			if !yield(idx) {
				return
			}
		}
	}
}

// childIndices returns the Len() target indices of n in ascending symbol
// order; a small helper shared by traversal and transformation code so they
// don't each re-implement the Children-drain loop.
func childIndices(n ReadNode) []int {
	out := make([]int, 0, n.Len())
	for idx := range Indexes(n) {
		out = append(out, idx)
	}
	return out
}
