package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKBTellIndexesByLiteralName(t *testing.T) {
	kb := NewKB()
	ct := kb.Constants

	c := kb.NewClause()
	c.PushBack(NewLiteral("King", ct.Intern("John")))
	kb.Tell(c)

	occ := kb.Occurrences("King")
	require.Len(t, occ, 1)
	assert.Equal(t, "John", occ[0].Args[0].(*Constant).Value())
	assert.Same(t, c, occ[0].Clause())
}

func TestKBTellAcceptsDisjunctiveClause(t *testing.T) {
	kb := NewKB()
	ct := kb.Constants

	c := kb.NewClause()
	c.PushBack(NewLiteral("P", ct.Intern("a")))
	c.PushBack(NewLiteral("Q", ct.Intern("b")))
	kb.Tell(c)

	assert.Len(t, kb.Clauses(), 1)
}

func TestCoalesceVariablesSharesSameSpellingWithinClause(t *testing.T) {
	x1 := NewVariable("x")
	x2 := NewVariable("x")
	l1 := NewLiteral("P", x1)
	l2 := NewLiteral("Q", x2)

	coalesceVariables([]*Literal{l1, l2})

	assert.Same(t, l1.Args[0], l2.Args[0])
}
