package fol

// Substitution maps variables to the terms they are bound to. It is built up
// by unify and later materialized into a clause by Subst. Substitutions are
// keyed by variable identity (pointer), not spelling, matching the data
// model's variable identity rule.
type Substitution map[*Variable]Term

// chase follows t through s until it reaches a constant or an unbound
// variable. It never mutates s.
func chase(t Term, s Substitution) Term {
	for {
		v, ok := t.(*Variable)
		if !ok {
			return t
		}
		bound, ok := s[v]
		if !ok {
			return t
		}
		t = bound
	}
}

// Unify computes a most general unifier for two terms under s, returning the
// extended substitution, or (nil, false) if no unifier exists. New bindings
// are written into s itself, so the returned substitution is s; after a
// failure s may hold bindings added before the failing step.
func Unify(x, y Term, s Substitution) (Substitution, bool) {
	if x == y {
		return s, true
	}
	if yv, ok := y.(*Variable); ok {
		return unifyVariable(yv, x, s)
	}
	if xv, ok := x.(*Variable); ok {
		return unifyVariable(xv, y, s)
	}
	xc, xok := x.(*Constant)
	yc, yok := y.(*Constant)
	if xok && yok && xc.value == yc.value {
		return s, true
	}
	return nil, false
}

// unifyVariable unifies v with x under s. It implements the three cases of
// spec §4.D unify_var: v already bound, x a variable already bound, or
// neither, in which case s is extended with v -> x.
func unifyVariable(v *Variable, x Term, s Substitution) (Substitution, bool) {
	if bound, ok := s[v]; ok {
		return Unify(bound, x, s)
	}
	if xv, ok := x.(*Variable); ok {
		if bound, ok := s[xv]; ok {
			return Unify(v, bound, s)
		}
	}
	s[v] = x
	return s, true
}

// UnifyArgs unifies two equal-length argument lists pairwise, threading the
// substitution through each element. It fails if the lists have different
// lengths.
func UnifyArgs(xs, ys []Term, s Substitution) (Substitution, bool) {
	if len(xs) != len(ys) {
		return nil, false
	}
	ok := true
	for i := range xs {
		if s, ok = Unify(xs[i], ys[i], s); !ok {
			return nil, false
		}
	}
	return s, true
}
