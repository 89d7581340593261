// serialize.go
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

import (
	"encoding/binary"
	"io"
)

// defaultMask is a CompactNode's elided-on-the-wire mask value: no
// children, accepting bit set.
const defaultMask uint32 = 1 << AlphaChars

// presence flags for the per-field elision scheme: a CompactNode record
// opens with one byte of these bits, then carries only the fields that
// are present, in field order.
const (
	baseIndexPresent = 1 << 0
	maskPresent      = 1 << 1
)

// presenceFlags reports which of n's fields differ from their defaults
// and so must actually appear on the wire.
func (n CompactNode) presenceFlags() byte {
	var flags byte
	if n.BaseIndex != 0 {
		flags |= baseIndexPresent
	}
	if n.Mask != defaultMask {
		flags |= maskPresent
	}
	return flags
}

// MarshalBinary encodes n as a presence byte followed by only the fields
// that differ from their default: base_index defaults to 0, mask
// defaults to the accepting-only value 1<<26. A field at its default is
// omitted entirely rather than padded, per the package's default-elision
// serialisation contract.
func (n CompactNode) MarshalBinary() ([]byte, error) {
	flags := n.presenceFlags()
	buf := make([]byte, 1, 1+8+4)
	buf[0] = flags
	if flags&baseIndexPresent != 0 {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], uint64(n.BaseIndex))
		buf = append(buf, tmp[:]...)
	}
	if flags&maskPresent != 0 {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], n.Mask)
		buf = append(buf, tmp[:]...)
	}
	return buf, nil
}

// UnmarshalBinary decodes a CompactNode from the variable-length record
// MarshalBinary produces, restoring any omitted field to its default.
func (n *CompactNode) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return ErrBadSerialization
	}
	flags := data[0]
	data = data[1:]

	n.BaseIndex = 0
	if flags&baseIndexPresent != 0 {
		if len(data) < 8 {
			return ErrBadSerialization
		}
		n.BaseIndex = int(binary.LittleEndian.Uint64(data[:8]))
		data = data[8:]
	}

	n.Mask = defaultMask
	if flags&maskPresent != 0 {
		if len(data) < 4 {
			return ErrBadSerialization
		}
		n.Mask = binary.LittleEndian.Uint32(data[:4])
		data = data[4:]
	}
	if len(data) != 0 {
		return ErrBadSerialization
	}
	if n.Mask&^((1<<27)-1) != 0 {
		return ErrBadSerialization
	}
	return nil
}

// IsDefault reports whether n is at its wire-elided default value: base
// index 0, no children, and the accepting bit set.
func (n CompactNode) IsDefault() bool {
	return n.BaseIndex == 0 && n.Mask == defaultMask
}

// WriteCompactGraph writes g to w as an ordered sequence of CompactNode
// records with no additional framing; each record elides whichever of
// its own fields are at their default, per the package's serialisation
// contract.
func WriteCompactGraph(w io.Writer, g *CompactGraph) error {
	for _, n := range g.nodes {
		buf, _ := n.MarshalBinary()
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadCompactGraph reads n node records (the caller must know the slot
// count out of band — the format carries no length prefix) from r,
// restoring any elided field back to its default.
func ReadCompactGraph(r io.Reader, n int) (*CompactGraph, error) {
	if n <= 0 {
		return nil, ErrEmptyGraph
	}
	nodes := make([]CompactNode, n)
	var flagByte [1]byte
	var field [8]byte
	for i := range nodes {
		if _, err := io.ReadFull(r, flagByte[:]); err != nil {
			return nil, err
		}
		record := []byte{flagByte[0]}
		if flagByte[0]&baseIndexPresent != 0 {
			if _, err := io.ReadFull(r, field[:8]); err != nil {
				return nil, err
			}
			record = append(record, field[:8]...)
		}
		if flagByte[0]&maskPresent != 0 {
			if _, err := io.ReadFull(r, field[:4]); err != nil {
				return nil, err
			}
			record = append(record, field[:4]...)
		}
		if err := nodes[i].UnmarshalBinary(record); err != nil {
			return nil, err
		}
	}
	return &CompactGraph{nodes: nodes}, nil
}

// WriteFlatGraph writes g to w as an ordered sequence of fixed-length
// WideNode records. Unlike the compact layout, this form has no
// contiguity requirement, so it can persist a graph that has not been
// cleaned.
func WriteFlatGraph(w io.Writer, g *FlatGraph) error {
	for _, n := range g.nodes {
		buf, _ := n.MarshalBinary()
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadFlatGraph reads n fixed-length WideNode records from r; as with
// ReadCompactGraph, the slot count travels out of band.
func ReadFlatGraph(r io.Reader, n int) (*FlatGraph, error) {
	if n <= 0 {
		return nil, ErrEmptyGraph
	}
	nodes := make([]*WideNode, n)
	buf := make([]byte, 1+AlphaChars*8)
	for i := range nodes {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		nodes[i] = &WideNode{}
		if err := nodes[i].UnmarshalBinary(buf); err != nil {
			return nil, err
		}
	}
	return &FlatGraph{nodes: nodes}, nil
}

// MarshalBinary encodes w as an accepting byte followed by 26
// little-endian 8-byte child indices, per the wide-node wire layout.
func (w WideNode) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1+AlphaChars*8)
	if w.End {
		buf[0] = 1
	}
	for i, idx := range w.Edges {
		binary.LittleEndian.PutUint64(buf[1+i*8:], uint64(idx))
	}
	return buf, nil
}

// UnmarshalBinary decodes a WideNode from exactly the bytes
// MarshalBinary produces.
func (w *WideNode) UnmarshalBinary(data []byte) error {
	if len(data) != 1+AlphaChars*8 {
		return ErrBadSerialization
	}
	w.End = data[0] != 0
	for i := range w.Edges {
		w.Edges[i] = int(binary.LittleEndian.Uint64(data[1+i*8:]))
	}
	return nil
}
