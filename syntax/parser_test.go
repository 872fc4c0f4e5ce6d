package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredicate(t *testing.T) {
	n, err := NewParser("King(John)").Parse()
	require.NoError(t, err)
	pred, ok := n.(*Predicate)
	require.True(t, ok)
	assert.Equal(t, "King", pred.Name)
	require.Len(t, pred.Args, 1)
	assert.Equal(t, Constant{Name: "John"}, pred.Args[0])
}

func TestParsePrecedenceImpliesLooserThanAnd(t *testing.T) {
	n, err := NewParser("King(x) & Greedy(x) => Evil(x)").Parse()
	require.NoError(t, err)
	top, ok := n.(*BinOp)
	require.True(t, ok)
	require.Equal(t, Implies, top.Op)

	left, ok := top.Left.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, And, left.Op)

	_, ok = top.Right.(*Predicate)
	assert.True(t, ok)
}

func TestParseNegationBindsTighterThanAnd(t *testing.T) {
	n, err := NewParser("~King(x) & Greedy(x)").Parse()
	require.NoError(t, err)
	top, ok := n.(*BinOp)
	require.True(t, ok)
	require.Equal(t, And, top.Op)
	_, ok = top.Left.(*Not)
	assert.True(t, ok)
}

func TestParseParensOverridePrecedence(t *testing.T) {
	n, err := NewParser("~(King(x) & Greedy(x))").Parse()
	require.NoError(t, err)
	not, ok := n.(*Not)
	require.True(t, ok)
	inner, ok := not.Operand.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, And, inner.Op)
}

func TestParseVariableVsConstantByCase(t *testing.T) {
	n, err := NewParser("Likes(x, Alice)").Parse()
	require.NoError(t, err)
	pred := n.(*Predicate)
	assert.Equal(t, Variable{Name: "x"}, pred.Args[0])
	assert.Equal(t, Constant{Name: "Alice"}, pred.Args[1])
}

func TestParseErrorOnTrailingInput(t *testing.T) {
	_, err := NewParser("King(x) King(y)").Parse()
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParseErrorOnUnclosedParen(t *testing.T) {
	_, err := NewParser("King(x").Parse()
	require.Error(t, err)
}

func TestParentLinksPopulated(t *testing.T) {
	n, err := NewParser("~King(x) & Greedy(x)").Parse()
	require.NoError(t, err)
	top := n.(*BinOp)
	assert.Nil(t, top.Parent())
	assert.Same(t, Node(top), top.Left.Parent())
	assert.Same(t, Node(top), top.Right.Parent())
}
