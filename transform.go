// transform.go
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

import "encoding/binary"

// assertAcyclic panics with ErrCyclic if g contains a cycle. Every
// transformation entry point calls this on entry: acyclicity is their
// precondition, not something they check gracefully — a caller that
// hand-builds a cyclic flat graph gets a debug-time assertion here rather
// than an infinite loop inside Minimise or Trim.
func assertAcyclic(g *FlatGraph) {
	if g.IsCyclic() {
		panic(ErrCyclic)
	}
}

// Unlink drops edges to dead subtrees: a node is empty if it does not
// accept and every one of its (surviving) children is empty. The walk is
// post-order, via backtrackWalk, so a child's emptiness is known before
// its parent's edge to it is judged. Unlink reports whether the root
// itself became empty, leaving any now-unreachable slots physically in
// place — Trim is what reclaims them.
func (g *FlatGraph) Unlink() bool {
	assertAcyclic(g)
	empty := make([]bool, len(g.nodes))
	backtrackWalk(g, func(idx int, node *WideNode, _ []uint8) {
		anyLive := false
		for sym, childIdx := range node.Children() {
			if empty[childIdx] {
				node.Delete(sym)
			} else {
				anyLive = true
			}
		}
		empty[idx] = !node.IsEnd() && !anyLive
	})
	return empty[0]
}

// nodeKey renders n's content — its accepting flag and its children by
// symbol — as a fixed-width byte string suitable as a map key. Two nodes
// with equal keys are structurally equal.
func nodeKey(n ReadNode) string {
	buf := make([]byte, 1+AlphaChars*8)
	if n.IsEnd() {
		buf[0] = 1
	}
	for sym, idx := range n.Children() {
		binary.LittleEndian.PutUint64(buf[1+int(sym)*8:], uint64(idx))
	}
	return string(buf)
}

// Minimise canonicalises g in place: every pair of structurally
// equivalent reachable subgraphs is collapsed onto a single
// representative slot. The walk is post-order (via backtrackWalk); at
// each node, child edges are first rewritten to the already-computed
// canonical slot of the subgraph they lead to, and the node's own
// (now-canonicalised) content is looked up in a content-addressed table
// to find or become its class's representative. Orphaned duplicate slots
// are left in the buffer, unreachable; Trim sweeps them away.
func (g *FlatGraph) Minimise() {
	assertAcyclic(g)
	canon := make([]int, len(g.nodes))
	table := make(map[string]int, len(g.nodes))
	backtrackWalk(g, func(idx int, node *WideNode, _ []uint8) {
		for sym, childIdx := range node.Children() {
			node.Put(sym, canon[childIdx])
		}
		key := nodeKey(node)
		if rep, ok := table[key]; ok {
			canon[idx] = rep
		} else {
			table[key] = idx
			canon[idx] = idx
		}
	})
}

// Trim drops every slot unreachable from the root and relabels the
// survivors in breadth-first order, so slot 0 is the root and each
// node's children are visited in symbol-ascending order relative to
// their siblings. This is the safer BFS-reorder-then-copy variant (the
// implementation keeps the original buffer intact until the new one is
// fully built, rather than reordering in place with raw swaps).
func (g *FlatGraph) Trim() {
	assertAcyclic(g)
	n := len(g.nodes)
	newSlot := make([]int, n)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	order = append(order, 0)
	visited[0] = true
	for i := 0; i < len(order); i++ {
		idx := order[i]
		for _, childIdx := range g.nodes[idx].Children() {
			if !visited[childIdx] {
				visited[childIdx] = true
				newSlot[childIdx] = len(order)
				order = append(order, childIdx)
			}
		}
	}

	newNodes := make([]*WideNode, len(order))
	for _, idx := range order {
		old := g.nodes[idx]
		nn := &WideNode{End: old.IsEnd()}
		for sym, childIdx := range old.Children() {
			nn.Edges[sym] = newSlot[childIdx]
		}
		newNodes[newSlot[idx]] = nn
	}
	g.nodes = newNodes
}

// Clean runs the full unlink → minimise → trim pipeline: unlink prunes
// dead subtrees (short-circuiting to the canonical empty graph if the
// root itself dies), minimise collapses duplicate subgraphs, and trim
// reorders the survivors into the breadth-first layout the compact
// encoding requires. Peak memory during Clean can reach roughly twice
// steady state, since Trim briefly holds both the old and new buffers.
func (g *FlatGraph) Clean() {
	if g.Unlink() {
		g.nodes = []*WideNode{{}}
		return
	}
	g.Minimise()
	g.Trim()
}
