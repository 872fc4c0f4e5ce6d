// Package fol implements a resolution-based first-order inference engine over
// a knowledge base of function-free, universally quantified Horn-like
// sentences. It provides the term/literal/clause model, unification,
// standardization-apart, and the refutation prover; the surface syntax lives
// in the sibling syntax package.
package fol

// Term is an argument of a literal: either a Variable or a Constant.
//
// Two Constants are the same term iff they carry the same spelling — callers
// are expected to intern constants through a KB's ConstantTable so that
// pointer equality implies spelling equality. Two Variables are the same term
// iff they are the same object: variables are never interned by spelling,
// since the same spelling used in two different clauses must denote distinct
// variables (see Clause and KB).
type Term interface {
	termNode()
	String() string
}

// Variable is a term bound by the implicit universal quantifier of the clause
// it appears in. Its name is retained only for printing and debugging;
// unification and clause identity never consult it, only the pointer.
type Variable struct {
	name string
}

// NewVariable returns a fresh variable, distinct from every other live
// variable regardless of name.
func NewVariable(name string) *Variable { return &Variable{name: name} }

func (v *Variable) termNode()      {}
func (v *Variable) String() string { return v.name }

// Rename changes a variable's display name in place. It never affects
// identity: callers that already hold other references to v keep referring
// to the same variable. Used by standardization-apart to give freshly copied
// variables names disjoint from any other clause in a resolution branch.
func (v *Variable) Rename(name string) { v.name = name }

// Constant is a ground term: an uppercase-leading name as the surface syntax
// spells it. Constants sharing a spelling are
// represented by the same *Constant object for the lifetime of a KB — see
// ConstantTable.Intern.
type Constant struct {
	value string
}

func (c *Constant) termNode()      {}
func (c *Constant) String() string { return c.value }

// Value returns the constant's interned spelling.
func (c *Constant) Value() string { return c.value }

// ConstantTable interns constants by spelling so that two occurrences of the
// same constant, anywhere in the knowledge base, are the same *Constant
// object. Unify short-cuts on pointer equality but still compares spellings
// when the pointers differ, and the canonical clause id uses the spelling.
type ConstantTable struct {
	byValue map[string]*Constant
}

// NewConstantTable returns an empty interning table.
func NewConstantTable() *ConstantTable {
	return &ConstantTable{byValue: make(map[string]*Constant)}
}

// Intern returns the Constant for value, creating and caching it on first
// use. The table, and therefore every Constant it has ever produced, lives
// for the lifetime of the process (or at least of the KB using it) per the
// data model's constant lifecycle.
func (t *ConstantTable) Intern(value string) *Constant {
	if c, ok := t.byValue[value]; ok {
		return c
	}
	c := &Constant{value: value}
	t.byValue[value] = c
	return c
}

// IsVariable reports whether term is a Variable.
func IsVariable(t Term) bool {
	_, ok := t.(*Variable)
	return ok
}
