package syntax

import (
	"github.com/pkg/errors"

	fol "github.com/avinashsubr/Resolution-Inference-FOL"
)

// eliminateImplications rewrites every A => B into (~A | B), recursively,
// since everything past this stage in the pipeline only understands And,
// Or, Not and Predicate.
func eliminateImplications(n Node) Node {
	switch t := n.(type) {
	case *Predicate:
		return t
	case *Not:
		return NewNot(eliminateImplications(t.Operand))
	case *BinOp:
		l := eliminateImplications(t.Left)
		r := eliminateImplications(t.Right)
		if t.Op == Implies {
			return NewBinOp(Or, NewNot(l), r)
		}
		return NewBinOp(t.Op, l, r)
	}
	panic("syntax: unreachable node type in eliminateImplications")
}

// pushNegationInward converts an implication-free tree to negation normal
// form: every Not ends up wrapping a Predicate directly. It is written as a
// single structural recursion rather than a repeated local-rewrite pass
// that loops until nothing changes — a structural recursion over De
// Morgan's laws and double-negation elimination is already a fixed point by
// construction, since it never revisits a subtree it has already pushed
// negation through.
func pushNegationInward(n Node) Node {
	switch t := n.(type) {
	case *Predicate:
		return t
	case *Not:
		return pushNegationBelow(t.Operand)
	case *BinOp:
		return NewBinOp(t.Op, pushNegationInward(t.Left), pushNegationInward(t.Right))
	}
	panic("syntax: unreachable node type in pushNegationInward")
}

// pushNegationBelow returns the negation normal form of ~operand.
func pushNegationBelow(operand Node) Node {
	switch t := operand.(type) {
	case *Predicate:
		return NewNot(t)
	case *Not:
		return pushNegationInward(t.Operand)
	case *BinOp:
		switch t.Op {
		case And:
			return NewBinOp(Or, pushNegationBelow(t.Left), pushNegationBelow(t.Right))
		case Or:
			return NewBinOp(And, pushNegationBelow(t.Left), pushNegationBelow(t.Right))
		default: // Implies: eliminateImplications should already have removed this
			return NewBinOp(And, pushNegationInward(t.Left), pushNegationBelow(t.Right))
		}
	}
	panic("syntax: unreachable node type in pushNegationBelow")
}

// distributeOrOverAnd rewrites an NNF tree so that no Or has an And as
// either operand, recursing into any new Or nodes the distribution creates
// — the standard recursive distribution algorithm, not a single flat pass.
func distributeOrOverAnd(n Node) Node {
	switch t := n.(type) {
	case *Predicate, *Not:
		return n
	case *BinOp:
		if t.Op == And {
			return NewBinOp(And, distributeOrOverAnd(t.Left), distributeOrOverAnd(t.Right))
		}
		l := distributeOrOverAnd(t.Left)
		r := distributeOrOverAnd(t.Right)
		if lb, ok := l.(*BinOp); ok && lb.Op == And {
			return NewBinOp(And,
				distributeOrOverAnd(NewBinOp(Or, lb.Left, r)),
				distributeOrOverAnd(NewBinOp(Or, lb.Right, r)))
		}
		if rb, ok := r.(*BinOp); ok && rb.Op == And {
			return NewBinOp(And,
				distributeOrOverAnd(NewBinOp(Or, l, rb.Left)),
				distributeOrOverAnd(NewBinOp(Or, l, rb.Right)))
		}
		return NewBinOp(Or, l, r)
	}
	panic("syntax: unreachable node type in distributeOrOverAnd")
}

func flattenAnd(n Node) []Node {
	if b, ok := n.(*BinOp); ok && b.Op == And {
		return append(flattenAnd(b.Left), flattenAnd(b.Right)...)
	}
	return []Node{n}
}

func flattenOr(n Node) []Node {
	if b, ok := n.(*BinOp); ok && b.Op == Or {
		return append(flattenOr(b.Left), flattenOr(b.Right)...)
	}
	return []Node{n}
}

// ToClauses parses sentence, converts it to conjunctive normal form, and
// splits the result into one fol.Clause per conjunct, with every literal's
// constants interned through kb.Constants and every clause's same-spelling
// variables coalesced into one shared fol.Variable (spec §3). The clauses
// are built with kb.NewClause so they draw ids from kb's counter, but are
// not told to kb — the caller decides whether to keep them.
func ToClauses(kb *fol.KB, sentence string) ([]*fol.Clause, error) {
	p := NewParser(sentence)
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	root = eliminateImplications(root)
	root = pushNegationInward(root)
	root = distributeOrOverAnd(root)

	conjuncts := flattenAnd(root)
	clauses := make([]*fol.Clause, 0, len(conjuncts))
	for _, conj := range conjuncts {
		lits, err := buildLiterals(kb, flattenOr(conj))
		if err != nil {
			return nil, &SyntaxError{Sentence: sentence, Err: err}
		}
		fol.CoalesceVariables(lits)

		c := kb.NewClause()
		for _, l := range lits {
			c.PushBack(l)
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

func buildLiterals(kb *fol.KB, disjuncts []Node) ([]*fol.Literal, error) {
	lits := make([]*fol.Literal, 0, len(disjuncts))
	for _, d := range disjuncts {
		negated := false
		pred, ok := d.(*Predicate)
		if !ok {
			not, ok := d.(*Not)
			if !ok {
				return nil, errors.Errorf("clause disjunct %s is not a literal", d)
			}
			pred, ok = not.Operand.(*Predicate)
			if !ok {
				return nil, errors.Errorf("negation %s does not wrap a predicate", d)
			}
			negated = true
		}

		args := make([]fol.Term, len(pred.Args))
		for i, a := range pred.Args {
			switch t := a.(type) {
			case Variable:
				args[i] = fol.NewVariable(t.Name)
			case Constant:
				args[i] = kb.Constants.Intern(t.Name)
			}
		}

		name := pred.Name
		if negated {
			name = "-" + name
		}
		lits = append(lits, fol.NewLiteral(name, args...))
	}
	return lits, nil
}
