package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fol "github.com/avinashsubr/Resolution-Inference-FOL"
)

func TestEliminateImplications(t *testing.T) {
	n, err := NewParser("King(x) => Evil(x)").Parse()
	require.NoError(t, err)
	n = eliminateImplications(n)
	top := n.(*BinOp)
	assert.Equal(t, Or, top.Op)
	_, ok := top.Left.(*Not)
	assert.True(t, ok)
}

func TestPushNegationInwardDeMorgan(t *testing.T) {
	n, err := NewParser("~(King(x) & Greedy(x))").Parse()
	require.NoError(t, err)
	n = pushNegationInward(n)
	top, ok := n.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, Or, top.Op)
	_, ok = top.Left.(*Not)
	assert.True(t, ok)
	_, ok = top.Right.(*Not)
	assert.True(t, ok)
}

func TestPushNegationInwardEliminatesDoubleNegation(t *testing.T) {
	n, err := NewParser("~~King(x)").Parse()
	require.NoError(t, err)
	n = pushNegationInward(n)
	_, ok := n.(*Predicate)
	assert.True(t, ok)
}

func TestDistributeOrOverAnd(t *testing.T) {
	n, err := NewParser("A(x) | (B(x) & C(x))").Parse()
	require.NoError(t, err)
	n = distributeOrOverAnd(n)
	top, ok := n.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, And, top.Op)
	l, ok := top.Left.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, Or, l.Op)
	r, ok := top.Right.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, Or, r.Op)
}

func TestToClausesSplitsRuleIntoSingleClause(t *testing.T) {
	kb := fol.NewKB()
	clauses, err := ToClauses(kb, "King(x) & Greedy(x) => Evil(x)")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, 3, clauses[0].Len())
}

func TestToClausesCoalescesSharedVariable(t *testing.T) {
	kb := fol.NewKB()
	clauses, err := ToClauses(kb, "King(x) & Greedy(x) => Evil(x)")
	require.NoError(t, err)
	lits := clauses[0].Literals()

	var kingVar, greedyVar, evilVar *fol.Variable
	for _, l := range lits {
		v, ok := l.Args[0].(*fol.Variable)
		require.True(t, ok)
		switch l.Name {
		case "-King":
			kingVar = v
		case "-Greedy":
			greedyVar = v
		case "Evil":
			evilVar = v
		}
	}
	require.NotNil(t, kingVar)
	assert.Same(t, kingVar, greedyVar)
	assert.Same(t, kingVar, evilVar)
}

func TestToClausesFactSingleLiteral(t *testing.T) {
	kb := fol.NewKB()
	clauses, err := ToClauses(kb, "King(John)")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	require.Equal(t, 1, clauses[0].Len())
	assert.Equal(t, "King", clauses[0].First().Name)
}

func TestToClausesRejectsMalformedSentence(t *testing.T) {
	kb := fol.NewKB()
	_, err := ToClauses(kb, "King(x")
	assert.Error(t, err)
}
