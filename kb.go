package fol

// KB is a knowledge base: the set of clauses told to it so far, indexed by
// literal name so the prover can find resolution candidates without
// scanning every clause, plus the constant table and clause-id counter
// shared by every clause born in this KB's lifetime (spec §4.E).
type KB struct {
	byName map[string][]*Literal
	all    []*Clause

	Constants *ConstantTable
	ids       *idSource
}

// NewKB returns an empty knowledge base with its own constant table and
// clause-id counter, both scoped to this KB's lifetime rather than to the
// process.
func NewKB() *KB {
	return &KB{
		byName:    make(map[string][]*Literal),
		Constants: NewConstantTable(),
		ids:       newIDSource(),
	}
}

// NewClause returns an empty clause carrying this KB's id counter. Callers
// building a clause from parsed syntax use this instead of fol.NewClause
// directly so every clause in the KB's lifetime draws from one sequence.
func (kb *KB) NewClause() *Clause { return NewClause(kb.ids) }

// Tell adds c to the knowledge base and indexes each of its literals by
// name. c must not be empty: an empty clause is a contradiction, not a
// fact to store.
func (kb *KB) Tell(c *Clause) {
	kb.all = append(kb.all, c)
	for _, l := range c.Literals() {
		kb.byName[l.Name] = append(kb.byName[l.Name], l)
	}
}

// Occurrences returns every literal occurrence told to the KB under the
// given exact name (including its "-" prefix if negated), in tell order.
// The prover looks up negateName(goal.Name) here to find candidate clauses
// to resolve the goal literal against.
func (kb *KB) Occurrences(name string) []*Literal {
	return kb.byName[name]
}

// Clauses returns every clause told to the KB, in tell order.
func (kb *KB) Clauses() []*Clause {
	return kb.all
}

// CoalesceVariables is coalesceVariables, exported for the syntax package's
// clause builder: the parser allocates one *Variable per term occurrence,
// and this is the single place that sharing within a clause is established.
func CoalesceVariables(lits []*Literal) { coalesceVariables(lits) }

// coalesceVariables rewrites name-keyed variable occurrences in lits so
// that every literal sharing a spelling within this one group points at
// the same *Variable object, per spec §3 ("variables in a clause are local
// to that clause" — same spelling, same clause, same variable). Literals
// that came out of the parser carry independently allocated variables per
// occurrence; this is the one place that sharing is established, eagerly,
// rather than reconstructed on every later copy the way the original
// Python implementation does it inside standardize_pred.
func coalesceVariables(lits []*Literal) {
	byName := make(map[string]*Variable)
	for _, l := range lits {
		for i, a := range l.Args {
			v, ok := a.(*Variable)
			if !ok {
				continue
			}
			shared, ok := byName[v.name]
			if !ok {
				byName[v.name] = v
				continue
			}
			l.Args[i] = shared
		}
	}
}
