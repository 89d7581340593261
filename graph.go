// graph.go
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

// FlatGraph is the authoritative mutable DAWG: a single contiguous
// sequence of wide nodes, addressed by integer index. Slot 0 is always
// the root. FlatGraph is the editing form described in §3 of the node
// model: mutations (word add/remove, set algebra, predicate filter) are
// cheap here because WideNode has no contiguity invariant to maintain.
type FlatGraph struct {
	nodes []*WideNode
}

var _ Dawg = (*FlatGraph)(nil)
var _ nodeSource = (*FlatGraph)(nil)

// NewFlatGraph returns an empty graph: a single non-accepting root.
func NewFlatGraph() *FlatGraph {
	return &FlatGraph{nodes: []*WideNode{{}}}
}

// From builds a fresh graph containing exactly the given words (as a
// redundant, unminimised trie).
func From(words ...string) *FlatGraph {
	g := NewFlatGraph()
	g.AddAll(words)
	return g
}

// Len returns the number of node slots in g, including any not reachable
// from the root.
func (g *FlatGraph) Len() int { return len(g.nodes) }

func (g *FlatGraph) nodeAt(idx int) ReadNode { return g.nodes[idx] }

// Root returns a Cursor over g's root, satisfying Dawg.
func (g *FlatGraph) Root() Cursor {
	return graphCursor{src: g, idx: 0}
}

// Node returns the mutable node at idx. idx must be in range.
func (g *FlatGraph) Node(idx int) *WideNode { return g.nodes[idx] }

// alloc appends a fresh empty node and returns its index.
func (g *FlatGraph) alloc() int {
	g.nodes = append(g.nodes, &WideNode{})
	return len(g.nodes) - 1
}

// Add inserts word into g, allocating any nodes needed for novel
// prefixes, and reports whether word was already present.
func (g *FlatGraph) Add(word string) bool {
	return g.AddSymbols(SymbolsOf(word))
}

// AddSymbols is Add over an already-decoded symbol sequence.
func (g *FlatGraph) AddSymbols(symbols []uint8) bool {
	idx := 0
	for _, sym := range symbols {
		next, ok := g.nodes[idx].Get(sym)
		if !ok {
			next = g.alloc()
			g.nodes[idx].Put(sym, next)
		}
		idx = next
	}
	was := g.nodes[idx].IsEnd()
	g.nodes[idx].SetEnd(true)
	return was
}

// AddAll inserts every word in words via Add.
func (g *FlatGraph) AddAll(words []string) {
	for _, w := range words {
		g.Add(w)
	}
}

// Sub removes word's membership (clears the accepting flag at the end of
// its path) and reports whether it was present. It does not reclaim any
// node slots; follow with Unlink or Clean to recover space.
func (g *FlatGraph) Sub(word string) bool {
	return g.SubSymbols(SymbolsOf(word))
}

// SubSymbols is Sub over an already-decoded symbol sequence.
func (g *FlatGraph) SubSymbols(symbols []uint8) bool {
	idx := 0
	for _, sym := range symbols {
		next, ok := g.nodes[idx].Get(sym)
		if !ok {
			return false
		}
		idx = next
	}
	was := g.nodes[idx].IsEnd()
	g.nodes[idx].SetEnd(false)
	return was
}

// Has reports whether word is accepted by g.
func (g *FlatGraph) Has(word string) bool {
	idx := 0
	for _, sym := range SymbolsOf(word) {
		next, ok := g.nodes[idx].Get(sym)
		if !ok {
			return false
		}
		idx = next
	}
	return g.nodes[idx].IsEnd()
}

// CompactGraph is the storage-optimised twin of FlatGraph: a contiguous
// array of CompactNode values. It is produced by FlatGraph.ToCompact once
// a graph's children are contiguous (guaranteed after Trim), and consumed
// by the serialisation layer (C9).
type CompactGraph struct {
	nodes []CompactNode
}

var _ Dawg = (*CompactGraph)(nil)
var _ nodeSource = (*CompactGraph)(nil)

func (g *CompactGraph) nodeAt(idx int) ReadNode { return g.nodes[idx] }

// Root returns a Cursor over g's root.
func (g *CompactGraph) Root() Cursor {
	return graphCursor{src: g, idx: 0}
}

// Len returns the number of node slots in g.
func (g *CompactGraph) Len() int { return len(g.nodes) }

// Node returns the CompactNode at idx.
func (g *CompactGraph) Node(idx int) CompactNode { return g.nodes[idx] }

// ToCompact converts g into a CompactGraph, failing with ErrNonContiguous
// at the first node whose populated children are not contiguous. Run
// Trim (and ideally the full Clean pipeline) first: it guarantees every
// node satisfies the contiguity invariant.
func (g *FlatGraph) ToCompact() (*CompactGraph, error) {
	out := make([]CompactNode, len(g.nodes))
	for i, n := range g.nodes {
		c, err := n.ToCompact()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return &CompactGraph{nodes: out}, nil
}

// ToFlat expands g back into an editable FlatGraph.
func (g *CompactGraph) ToFlat() *FlatGraph {
	out := make([]*WideNode, len(g.nodes))
	for i, n := range g.nodes {
		w := n.ToWide()
		out[i] = &w
	}
	return &FlatGraph{nodes: out}
}
