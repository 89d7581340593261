// pattern.go
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
	"iter"
	"math/bits"
	"strings"
)

// Pattern is an ordered sequence of per-position 26-bit symbol masks,
// parsed from a small regex-like grammar (literals, '-' for "any", and
// '[...]' groups of letters and ranges). A pattern of length k accepts
// exactly the words of length k whose i-th symbol is set in mask i.
type Pattern struct {
	masks []uint32
}

func rangeMask(start, end uint8) uint32 {
	return (uint32(1) << (end + 1)) - (uint32(1) << start)
}

// ParsePattern parses a pattern string per the grammar described on
// Pattern, returning a *ParseError (tagged with the input,
// byte offset, and error kind) on malformed input.
func ParsePattern(s string) (Pattern, error) {
	var masks []uint32
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			v := SymbolOf(c)
			masks = append(masks, rangeMask(v, v))
			i++
		case c == '-':
			masks = append(masks, rangeMask(0, 25))
			i++
		case c == '[':
			mask, next, err := parsePatternGroup(s, i+1)
			if err != nil {
				return Pattern{}, err
			}
			masks = append(masks, mask)
			i = next
		case c == ']':
			return Pattern{}, &ParseError{Input: s, Index: i, Kind: ReclosedGroup}
		default:
			return Pattern{}, &ParseError{Input: s, Index: i, Kind: Unexpected}
		}
	}
	return Pattern{masks: masks}, nil
}

// parsePatternGroup parses the contents of a "[...]" group starting at
// byte offset i (just past the '['), returning the group's mask and the
// offset just past the closing ']'.
func parsePatternGroup(s string, i int) (mask uint32, next int, err error) {
	var start uint8
	haveStart := false
	inRange := false

	for i < len(s) {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' && inRange:
			v := SymbolOf(c)
			lo := uint8(0)
			if haveStart {
				lo = start
			}
			mask |= rangeMask(lo, v)
			start, haveStart = v, true
			inRange = false
			i++
		case c >= 'a' && c <= 'z':
			v := SymbolOf(c)
			if haveStart {
				mask |= rangeMask(start, start)
			}
			start, haveStart = v, true
			i++
		case c == '-' && !inRange:
			inRange = true
			i++
		case c == ']':
			switch {
			case inRange:
				lo := uint8(0)
				if haveStart {
					lo = start
				}
				mask |= rangeMask(lo, 25)
			case haveStart:
				mask |= rangeMask(start, start)
			}
			return mask, i + 1, nil
		case c == '-' && inRange:
			return 0, 0, &ParseError{Input: s, Index: i, Kind: UnclosedRange}
		case c == '[':
			return 0, 0, &ParseError{Input: s, Index: i, Kind: UnclosedGroup}
		default:
			return 0, 0, &ParseError{Input: s, Index: i, Kind: Unexpected}
		}
	}
	return 0, 0, &ParseError{Input: s, Index: len(s), Kind: UnclosedGroup}
}

// String renders p back to its canonical textual form: a single letter
// for a one-bit mask, '-' for a full 26-bit mask, "[]" for an empty mask,
// and otherwise a minimal bracketed list of ranges (each in the shortest
// of "x", "x-y", "-y", or "x-").
func (p Pattern) String() string {
	var b strings.Builder
	for _, m := range p.masks {
		fmtMask(&b, m)
	}
	return b.String()
}

func fmtMask(b *strings.Builder, mask uint32) {
	switch bits.OnesCount32(mask) {
	case 0:
		b.WriteString("[]")
		return
	case 1:
		b.WriteByte(ByteOf(uint8(bits.TrailingZeros32(mask))))
		return
	case AlphaChars:
		b.WriteByte('-')
		return
	}
	b.WriteByte('[')
	i := uint8(0)
	for mask != 0 {
		s := uint8(bits.TrailingZeros32(mask))
		mask >>= s
		l := uint8(bits.TrailingZeros32(^mask))
		mask >>= l
		i += s
		fmtRange(b, i, i+l-1)
		i += l
	}
	b.WriteByte(']')
}

func fmtRange(b *strings.Builder, start, end uint8) {
	switch {
	case start == end:
		b.WriteByte(ByteOf(start))
	case start == 0:
		b.WriteByte('-')
		b.WriteByte(ByteOf(end))
	case end == 25:
		b.WriteByte(ByteOf(start))
		b.WriteByte('-')
	default:
		b.WriteByte(ByteOf(start))
		b.WriteByte('-')
		b.WriteByte(ByteOf(end))
	}
}

// PositionCount returns the number of positions in p — the fixed length
// every word p accepts must have.
func (p Pattern) PositionCount() int {
	return len(p.masks)
}

// WordCount returns the number of distinct words p accepts: the product
// of each position's popcount, or zero for the empty pattern (by
// convention — see the package design notes on the empty-pattern
// asymmetry).
func (p Pattern) WordCount() int {
	if len(p.masks) == 0 {
		return 0
	}
	n := 1
	for _, m := range p.masks {
		n *= bits.OnesCount32(m)
	}
	return n
}

// patternCursor is a Cursor over a position in a Pattern. Position
// len(masks) is the unique accepting, childless terminal; position 0 of
// a zero-length pattern is deliberately NOT accepting, which is what
// makes WordCount's "empty pattern has zero words" convention hold under
// Words/Nodes traversal too.
type patternCursor struct {
	pat *Pattern
	pos int
}

var _ Cursor = patternCursor{}

func (c patternCursor) IsEnd() bool {
	return len(c.pat.masks) > 0 && c.pos >= len(c.pat.masks)
}

func (c patternCursor) mask() uint32 {
	if c.pos >= len(c.pat.masks) {
		return 0
	}
	return c.pat.masks[c.pos]
}

func (c patternCursor) IsEmpty() bool {
	return c.mask() == 0
}

func (c patternCursor) Has(sym uint8) bool {
	return c.mask()&(1<<sym) != 0
}

// NextSymbol returns the smallest permitted symbol >= sym at this
// position, located in constant time the same way CompactNode does it.
func (c patternCursor) NextSymbol(sym uint8) (uint8, bool) {
	masked := c.mask() &^ ((uint32(1) << sym) - 1)
	if masked == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros32(masked)), true
}

func (c patternCursor) Child(sym uint8) (Cursor, bool) {
	if !c.Has(sym) {
		return nil, false
	}
	return patternCursor{pat: c.pat, pos: c.pos + 1}, true
}

func (c patternCursor) Children() iter.Seq2[uint8, Cursor] {
	return func(yield func(uint8, Cursor) bool) {
		m := c.mask()
		for m != 0 {
			sym := uint8(bits.TrailingZeros32(m))
			if !yield(sym, patternCursor{pat: c.pat, pos: c.pos + 1}) {
				return
			}
			m &= m - 1
		}
	}
}

// Root returns a Cursor over p's first position, satisfying Dawg. This
// lets a Pattern be combined with any other Dawg via Intersect/Union, and
// enumerated via Words, without ever materialising it as a graph.
func (p *Pattern) Root() Cursor {
	return patternCursor{pat: p, pos: 0}
}

var _ Dawg = (*Pattern)(nil)

// Has reports whether word matches p: same length, every symbol set in
// its position's mask.
func (p *Pattern) Has(word string) bool {
	symbols := SymbolsOf(word)
	if len(symbols) != len(p.masks) {
		return false
	}
	for i, sym := range symbols {
		if p.masks[i]&(1<<sym) == 0 {
			return false
		}
	}
	return true
}
