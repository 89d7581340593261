// traverse.go
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

// presentSymbols returns the symbols present at c, in ascending order.
func presentSymbols(c Cursor) []uint8 {
	out := make([]uint8, 0, AlphaChars)
	for sym, ok := c.NextSymbol(0); ok; sym, ok = c.NextSymbol(sym + 1) {
		out = append(out, sym)
	}
	return out
}

// presentSymbolsOfNode is presentSymbols for a raw ReadNode, used by the
// backtrack walker which operates directly on FlatGraph slots rather
// than through the Cursor abstraction.
func presentSymbolsOfNode(n ReadNode) []uint8 {
	out := make([]uint8, 0, n.Len())
	for sym := range Symbols(n) {
		out = append(out, sym)
	}
	return out
}

// dfsFrame is a stack entry shared by Nodes and Words: a Cursor paired
// with the symbols still to explore from it, in ascending order.
type dfsFrame struct {
	cur  Cursor
	syms []uint8
}

// Nodes performs a depth-first, pre-order walk of d, yielding every
// visited Cursor once per edge entry taken to reach it (the root is
// yielded once, with no preceding edge). There is no deduplication: a
// node reachable via two paths is yielded twice.
func Nodes(d Dawg) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		root := d.Root()
		if !yield(root) {
			return
		}
		stack := []dfsFrame{{cur: root, syms: presentSymbols(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.syms) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			sym := top.syms[0]
			top.syms = top.syms[1:]
			child, ok := top.cur.Child(sym)
			if !ok {
				continue
			}
			if !yield(child) {
				return
			}
			stack = append(stack, dfsFrame{cur: child, syms: presentSymbols(child)})
		}
	}
}

// Words performs a depth-first walk of d, yielding every accepted word in
// ascending lexicographic order. Termination is guaranteed by d's
// acyclicity.
func Words(d Dawg) iter.Seq[string] {
	return func(yield func(string) bool) {
		root := d.Root()
		word := make([]uint8, 0, 32)
		if root.IsEnd() {
			if !yield(WordOf(word)) {
				return
			}
		}
		stack := []dfsFrame{{cur: root, syms: presentSymbols(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.syms) == 0 {
				stack = stack[:len(stack)-1]
				if len(word) > 0 {
					word = word[:len(word)-1]
				}
				continue
			}
			sym := top.syms[0]
			top.syms = top.syms[1:]
			child, ok := top.cur.Child(sym)
			if !ok {
				continue
			}
			word = append(word, sym)
			if child.IsEnd() {
				if !yield(WordOf(word)) {
					return
				}
			}
			stack = append(stack, dfsFrame{cur: child, syms: presentSymbols(child)})
		}
	}
}

// WordCount returns the number of accepted words in d, by scanning every
// node the enumerator reaches and counting the accepting ones. Each
// accepting node is reached once per distinct path to it, so the count
// equals the number of distinct accepted paths, which is also the
// length of Words(d).
func WordCount(d Dawg) int {
	n := 0
	for c := range Nodes(d) {
		if c.IsEnd() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether d accepts no words at all: a scan over the node
// enumerator looking for any accepting node.
func IsEmpty(d Dawg) bool {
	for c := range Nodes(d) {
		if c.IsEnd() {
			return false
		}
	}
	return true
}

// backtrackFrame is a stack entry for the backtrack-callback walker: a
// FlatGraph slot paired with a clone of its present symbols, consumed
// from lowest to highest as children are visited.
type backtrackFrame struct {
	idx  int
	syms []uint8
}

// backtrackWalk performs a depth-first, post-order traversal of g
// starting at its root, calling f(idx, node, word) the moment the
// traversal backtracks out of each reached slot — after every child has
// been fully processed. f may mutate node (e.g. retarget or clear
// edges); the walker's own notion of which symbols to visit at a slot is
// snapshotted on entry and is unaffected by such mutation. This is the
// shared substrate of Unlink and Keep.
func backtrackWalk(g *FlatGraph, f func(idx int, node *WideNode, word []uint8)) {
	word := make([]uint8, 0, 32)
	stack := []backtrackFrame{{idx: 0, syms: presentSymbolsOfNode(g.nodes[0])}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.syms) == 0 {
			f(top.idx, g.nodes[top.idx], word)
			stack = stack[:len(stack)-1]
			if len(word) > 0 {
				word = word[:len(word)-1]
			}
			continue
		}
		sym := top.syms[0]
		top.syms = top.syms[1:]
		childIdx, ok := g.nodes[top.idx].Get(sym)
		if !ok {
			continue
		}
		word = append(word, sym)
		stack = append(stack, backtrackFrame{idx: childIdx, syms: presentSymbolsOfNode(g.nodes[childIdx])})
	}
}

// IsCyclic reports whether g contains a cycle reachable from its root.
// This is a debug assertion used by the transformation pipeline's entry
// points, not part of the production hot path.
func (g *FlatGraph) IsCyclic() bool {
	const (
		unvisited = 0
		onPath    = 1
		done      = 2
	)
	state := make([]int, len(g.nodes))

	var visit func(idx int) bool
	visit = func(idx int) bool {
		switch state[idx] {
		case onPath:
			return true
		case done:
			return false
		}
		state[idx] = onPath
		for _, child := range childIndices(g.nodes[idx]) {
			if visit(child) {
				return true
			}
		}
		state[idx] = done
		return false
	}
	return visit(0)
}
