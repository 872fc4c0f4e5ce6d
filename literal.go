package fol

import (
	"strings"
)

// Literal is a predicate occurrence, possibly negated: Name carries a
// leading "-" when the literal is negated, mirroring the surface syntax's
// use of "~" and the original clausifier's encoding of "~P(...)" as the
// literal named "-P". Args is the predicate's ordered argument list.
//
// prev, next and head implement the clause's doubly linked list (see
// Clause); they are nil for a Literal that has not yet been inserted into a
// clause.
type Literal struct {
	Name string
	Args []Term

	prev, next *Literal
	head       *Clause
}

// NewLiteral returns a new, unlinked literal occurrence.
func NewLiteral(name string, args ...Term) *Literal {
	return &Literal{Name: name, Args: args}
}

// Negated reports whether the literal is negated.
func (l *Literal) Negated() bool {
	return strings.HasPrefix(l.Name, "-")
}

// Clause returns the clause this literal occurrence belongs to, or nil if it
// has not been inserted into one. KB lookups use this to recover the parent
// clause of a literal hit.
func (l *Literal) Clause() *Clause { return l.head }

// Next returns the next literal in the owning clause, or nil past the last
// literal.
func (l *Literal) Next() *Literal {
	if l.head == nil || l.next == &l.head.sentinel {
		return nil
	}
	return l.next
}

func (l *Literal) String() string {
	var b strings.Builder
	b.WriteString(l.Name)
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// negateName toggles the leading "-" that marks a negated literal name.
// negateName(negateName(n)) == n for every name.
func negateName(name string) string {
	if strings.HasPrefix(name, "-") {
		return name[1:]
	}
	return "-" + name
}

// canonicalTag returns the per-literal piece of a clause's canonical id: the
// literal's name followed by one tag per argument, where a constant's tag is
// its interned value and a variable's tag is the fixed sentinel "v" — two
// arguments that are both variables are indistinguishable here regardless of
// whether they are the same variable, matching spec §4.G's canonical clause
// id exactly (and, as a consequence, its loop-cutoff coarseness).
func (l *Literal) canonicalTag() string {
	var b strings.Builder
	b.WriteString(l.Name)
	for _, a := range l.Args {
		b.WriteByte('\x00')
		switch t := a.(type) {
		case *Constant:
			b.WriteString(t.value)
		case *Variable:
			b.WriteByte('v')
		}
	}
	return b.String()
}

// Subst returns a copy of l whose arguments have each been walked through s
// to a fixed point (spec §4.E), leaving l itself untouched. A resolvent's
// literals are always produced this way rather than by mutating the parent
// clause's literals in place, since the parent clause is tried against
// several candidates in turn and must survive each attempt unchanged.
func (l *Literal) Subst(s Substitution) *Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = chase(a, s)
	}
	return &Literal{Name: l.Name, Args: args}
}

// copyWith returns a structural copy of l whose variable arguments are
// translated through vars (creating fresh variables on first sighting) and
// whose constant arguments are shared as-is. Reusing one vars map across
// every literal of a clause copy is what keeps two occurrences of the same
// source variable pointing at the same fresh variable after the copy, per
// spec §3's "variables in a clause are local to that clause" invariant.
func (l *Literal) copyWith(vars map[*Variable]*Variable) *Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		if v, ok := a.(*Variable); ok {
			nv, ok := vars[v]
			if !ok {
				nv = NewVariable(v.name)
				vars[v] = nv
			}
			args[i] = nv
		} else {
			args[i] = a
		}
	}
	return &Literal{Name: l.Name, Args: args}
}
