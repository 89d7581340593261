// algebra.go
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

// pairFrame is a lockstep DFS stack entry: a slot in g paired with the
// Cursor at the matching position in the other DAWG being combined.
type pairFrame struct {
	gIdx int
	oc   Cursor
}

// Union extends g in place to also accept every word of other: accepting
// flags are OR'd and any symbol present in other gets a (possibly fresh)
// edge in g before the walk recurses.
func (g *FlatGraph) Union(other Dawg) {
	stack := []pairFrame{{gIdx: 0, oc: other.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := g.nodes[p.gIdx]
		node.SetEnd(node.IsEnd() || p.oc.IsEnd())
		for sym, childCur := range p.oc.Children() {
			gc, ok := node.Get(sym)
			if !ok {
				gc = g.alloc()
				node.Put(sym, gc)
			}
			stack = append(stack, pairFrame{gIdx: gc, oc: childCur})
		}
	}
}

// Intersect restricts g in place to only the words also accepted by
// other: accepting flags are AND'd, and any of g's edges whose symbol
// other lacks is cut. This only dirties flags and edges; run Clean
// afterwards to reclaim the slots it orphans.
func (g *FlatGraph) Intersect(other Dawg) {
	stack := []pairFrame{{gIdx: 0, oc: other.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := g.nodes[p.gIdx]
		node.SetEnd(node.IsEnd() && p.oc.IsEnd())
		for sym, gChild := range node.Children() {
			childCur, ok := p.oc.Child(sym)
			if !ok {
				node.Delete(sym)
				continue
			}
			stack = append(stack, pairFrame{gIdx: gChild, oc: childCur})
		}
	}
}

// Remove clears from g the acceptance of every word also accepted by
// other, leaving words of g not matched along a shared path untouched.
// Like Intersect, it only dirties flags; run Clean afterwards to reclaim
// space.
func (g *FlatGraph) Remove(other Dawg) {
	stack := []pairFrame{{gIdx: 0, oc: other.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := g.nodes[p.gIdx]
		node.SetEnd(node.IsEnd() && !p.oc.IsEnd())
		for sym, gChild := range node.Children() {
			if childCur, ok := p.oc.Child(sym); ok {
				stack = append(stack, pairFrame{gIdx: gChild, oc: childCur})
			}
		}
	}
}

// Keep filters g's accepted words in place through predicate: at every
// node that currently accepts, its accepting flag becomes
// predicate(word). Run Clean afterwards to physically drop the words
// the predicate rejected.
func (g *FlatGraph) Keep(predicate func(word string) bool) {
	backtrackWalk(g, func(_ int, node *WideNode, word []uint8) {
		if node.IsEnd() {
			node.SetEnd(predicate(WordOf(word)))
		}
	})
}
