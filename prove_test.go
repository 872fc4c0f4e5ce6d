package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAskKingGreedyEvil mirrors the textbook "all greedy kings are evil"
// example: a definite clause rule plus two ground facts should let Ask
// derive the rule's conclusion for the one individual satisfying both
// antecedents, and fail for an individual the KB says nothing about.
func TestAskKingGreedyEvil(t *testing.T) {
	kb := NewKB()
	ct := kb.Constants
	john := ct.Intern("John")

	king := kb.NewClause()
	king.PushBack(NewLiteral("King", john))
	kb.Tell(king)

	greedy := kb.NewClause()
	greedy.PushBack(NewLiteral("Greedy", john))
	kb.Tell(greedy)

	x := NewVariable("x")
	rule := kb.NewClause()
	rule.PushBack(NewLiteral("-King", x))
	rule.PushBack(NewLiteral("-Greedy", x))
	rule.PushBack(NewLiteral("Evil", x))
	kb.Tell(rule)

	require.True(t, Ask(kb, NewLiteral("Evil", john)))
	require.False(t, Ask(kb, NewLiteral("Evil", ct.Intern("Richard"))))
}

// TestAskChainsThroughMultipleRules checks that resolution chains more than
// one rule deep: Ancestor(x,y) follows from Parent(x,y), and also follows
// transitively from Parent(x,z) and Ancestor(z,y).
func TestAskChainsThroughMultipleRules(t *testing.T) {
	kb := NewKB()
	ct := kb.Constants
	a, b, c := ct.Intern("a"), ct.Intern("b"), ct.Intern("c")

	parentAB := kb.NewClause()
	parentAB.PushBack(NewLiteral("Parent", a, b))
	kb.Tell(parentAB)

	parentBC := kb.NewClause()
	parentBC.PushBack(NewLiteral("Parent", b, c))
	kb.Tell(parentBC)

	x, y := NewVariable("x"), NewVariable("y")
	directRule := kb.NewClause()
	directRule.PushBack(NewLiteral("-Parent", x, y))
	directRule.PushBack(NewLiteral("Ancestor", x, y))
	kb.Tell(directRule)

	x2, y2, z2 := NewVariable("x"), NewVariable("y"), NewVariable("z")
	transRule := kb.NewClause()
	transRule.PushBack(NewLiteral("-Parent", x2, z2))
	transRule.PushBack(NewLiteral("-Ancestor", z2, y2))
	transRule.PushBack(NewLiteral("Ancestor", x2, y2))
	kb.Tell(transRule)

	assert.True(t, Ask(kb, NewLiteral("Ancestor", a, b)))
	assert.True(t, Ask(kb, NewLiteral("Ancestor", a, c)))
	assert.False(t, Ask(kb, NewLiteral("Ancestor", c, a)))
}

func TestNameGeneratorNeverRepeats(t *testing.T) {
	gen := NewNameGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := gen.Next()
		require.False(t, seen[n], "generator repeated %q", n)
		seen[n] = true
	}
}

func TestStandardizeApartProducesFreshVariables(t *testing.T) {
	ids := newIDSource()
	c := NewClause(ids)
	x := NewVariable("x")
	c.PushBack(NewLiteral("P", x))

	gen := NewNameGenerator()
	cp := StandardizeApart(c, ids, gen)

	cpVar := cp.Literals()[0].Args[0].(*Variable)
	assert.NotSame(t, x, cpVar)
	assert.NotEqual(t, c.ID, cp.ID)
}
