// widenode.go
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

// WideNode is the editing-optimised node representation: a dense 26-slot
// array, one entry per symbol, holding the target node index directly.
// Slot value 0 means "no edge", which is safe because a FlatGraph's root
// always lives at index 0 and therefore never appears as anyone's child.
type WideNode struct {
	End   bool
	Edges [AlphaChars]int
}

var _ WriteNode = (*WideNode)(nil)

// IsEnd reports whether the empty suffix is accepted at w.
func (w WideNode) IsEnd() bool {
	return w.End
}

// IsEmpty reports whether w has no outgoing edges.
func (w WideNode) IsEmpty() bool {
	return w.Edges == [AlphaChars]int{}
}

// Len returns the number of outgoing edges of w.
func (w WideNode) Len() int {
	n := 0
	for _, v := range w.Edges {
		if v != 0 {
			n++
		}
	}
	return n
}

// Has reports whether w has an outgoing edge labelled c.
func (w WideNode) Has(c uint8) bool {
	return w.Edges[c] != 0
}

// Get returns the target node index of the edge labelled c.
func (w WideNode) Get(c uint8) (int, bool) {
	v := w.Edges[c]
	if v == 0 {
		return 0, false
	}
	return v, true
}

// NextSymbol returns the smallest present symbol >= c, if any.
func (w WideNode) NextSymbol(c uint8) (uint8, bool) {
	return scanNextSymbol(w, c)
}

// Children iterates (symbol, index) pairs in ascending symbol order.
func (w WideNode) Children() iter.Seq2[uint8, int] {
	return func(yield func(uint8, int) bool) {
		for c := uint8(0); c < AlphaChars; c++ {
			if v := w.Edges[c]; v != 0 {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

// SetEnd sets whether the empty suffix is accepted at w.
func (w *WideNode) SetEnd(end bool) {
	w.End = end
}

// Put creates or retargets the edge labelled c to point at idx. idx must
// not be 0 (the reserved root index); see the WideNode doc comment.
func (w *WideNode) Put(c uint8, idx int) {
	w.Edges[c] = idx
}

// Delete removes the edge labelled c, if present.
func (w *WideNode) Delete(c uint8) {
	w.Edges[c] = 0
}
