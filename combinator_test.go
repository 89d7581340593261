// combinator_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package dawg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectNodeViewDoesNotMutateOperands(t *testing.T) {
	g1 := From("cat", "cup", "dog")
	g2 := From("cup", "dog", "fish")

	view := Intersect(g1.Root(), g2.Root())
	var got []string
	for w := range Words(AsDawg(view)) {
		got = append(got, w)
	}
	assert.ElementsMatch(t, []string{"cup", "dog"}, got)

	// Neither operand graph should have been touched by the view.
	assert.ElementsMatch(t, []string{"cat", "cup", "dog"}, wordsOf(g1))
	assert.ElementsMatch(t, []string{"cup", "dog", "fish"}, wordsOf(g2))
}

func TestUnionNodeViewOverAbsentOperand(t *testing.T) {
	g1 := From("cat")
	g2 := From("dog")

	view := Union(g1.Root(), g2.Root())
	var got []string
	for w := range Words(AsDawg(view)) {
		got = append(got, w)
	}
	assert.ElementsMatch(t, []string{"cat", "dog"}, got)
}

func TestIntersectNodeIsEmptyWhenNoCommonSymbol(t *testing.T) {
	g1 := From("cat")
	g2 := From("dog")

	view := Intersect(g1.Root(), g2.Root())
	assert.True(t, view.IsEmpty())
	assert.False(t, view.IsEnd())
}

func TestUnionNodeChildAbsentOperandStaysNil(t *testing.T) {
	g1 := From("ca")
	g2 := From("cb")

	root := Union(g1.Root(), g2.Root())
	child, ok := root.Child(SymbolOf('c'))
	assert.True(t, ok)

	un, isUnion := child.(UnionNode)
	assert.True(t, isUnion)

	childA, hasA := un.Child(SymbolOf('a'))
	assert.True(t, hasA)
	assert.Nil(t, childA.(UnionNode).Ops[1], "g2 has no 'a' edge, so its operand stays absent")
	childB, hasB := un.Child(SymbolOf('b'))
	assert.True(t, hasB)
	assert.Nil(t, childB.(UnionNode).Ops[0], "g1 has no 'b' edge, so its operand stays absent")
	_, hasZ := un.Child(SymbolOf('z'))
	assert.False(t, hasZ)
}

func TestThreeWayIntersect(t *testing.T) {
	g1 := From("bat", "cat", "rat", "sat")
	g2 := From("bat", "cat", "rat")
	g3 := From("bat", "cat", "mat")

	view := Intersect(g1.Root(), g2.Root(), g3.Root())
	var got []string
	for w := range Words(AsDawg(view)) {
		got = append(got, w)
	}
	assert.ElementsMatch(t, []string{"bat", "cat"}, got)
}
