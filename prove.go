package fol

import (
	"time"

	"github.com/hashicorp/go-set/v3"
)

// maxDepth bounds the resolution search depth (spec §4.G / §5): a branch
// that has resolved this many times without reaching the empty clause is
// abandoned rather than explored further.
const maxDepth = 500

// askDeadline bounds the wall-clock time of a single Ask call (spec §5),
// measured from the call's own entry rather than from process start.
const askDeadline = 2 * time.Second

// Ask proves query by refutation against kb: it negates query and tries
// resolving that negation against every KB clause carrying a matching
// opposite-polarity literal. Per spec §4.G's ask(), each of these top-level
// candidates gets its own independent resolution search starting from an
// empty loop-cutoff set — mirroring the original implementation's ask(),
// which calls resolution(kb, to_resolve, set(), 0, abort_time) fresh inside
// its loop over KB candidates, rather than threading one shared set across
// candidates that have nothing to do with each other. It returns false both
// when every candidate's search exhausts itself and when a search is cut off
// by the depth or wall-clock bound — the caller cannot distinguish
// "disproved" from "gave up" per spec §4.G, matching the original
// implementation's behavior.
func Ask(kb *KB, query *Literal) bool {
	goal := NewLiteral(negateName(query.Name), query.Args...)
	deadline := time.Now().Add(askDeadline)
	gen := NewNameGenerator()

	for _, kbLit := range kb.Occurrences(negateName(goal.Name)) {
		resolvent, ok := resolveWith(kb, nil, goal, kbLit, gen)
		if !ok {
			continue
		}
		if resolution(kb, resolvent, set.New[string](0), 1, deadline, gen) {
			return true
		}
	}
	return false
}

// resolveWith tries to resolve goal, a selected literal with rest its
// clause's remaining literals, against kbLit, a literal of opposite polarity
// found in the knowledge base. It standardizes kbLit's clause apart from the
// running search, unifies goal's arguments against kbLit's, and on success
// builds the resolvent from the unified remainder of both clauses. ok is
// false when the literals do not unify, in which case the resolvent is nil.
func resolveWith(kb *KB, rest []*Literal, goal *Literal, kbLit *Literal, gen *NameGenerator) (*Clause, bool) {
	kbClause := kbLit.Clause()
	stdClause, stdLit := StandardizeApartTracking(kbClause, kb.ids, gen, kbLit)

	s, ok := UnifyArgs(goal.Args, stdLit.Args, Substitution{})
	if !ok {
		return nil, false
	}

	resolvent := kb.NewClause()
	for _, l := range rest {
		resolvent.PushBack(l.Subst(s))
	}
	for _, l := range stdClause.Literals() {
		if l == stdLit {
			continue
		}
		resolvent.PushBack(l.Subst(s))
	}
	return resolvent, true
}

// resolution implements spec §4.G's search: factor the current clause,
// check for the empty clause, check the loop-cutoff set, then try
// resolving the clause's first literal against every KB clause carrying a
// matching opposite-polarity literal, recursing on each resolvent in turn.
// Unlike Ask's top-level fan-out, this internal candidate loop shares one
// seen set across all of its candidates, matching the original
// implementation's recursive resolution(), which threads its seen argument
// through every nested call rather than forking it per candidate.
//
// Always resolving on the first literal, rather than trying every literal
// in the clause, is what spec §9 flags as an incompleteness the original
// implementation accepts rather than fixes; this port keeps the same
// behavior rather than generalizing it, since spec.md does not ask for a
// complete strategy, only this one.
func resolution(kb *KB, clause *Clause, seen *set.Set[string], depth int, deadline time.Time, gen *NameGenerator) bool {
	if depth > maxDepth || time.Now().After(deadline) {
		return false
	}

	clause.Factor()
	if clause.IsEmpty() {
		return true
	}

	id := clause.canonicalID()
	if seen.Contains(id) {
		return false
	}
	seen.Insert(id)

	goal := clause.First()
	rest := clause.Literals()[1:]

	for _, kbLit := range kb.Occurrences(negateName(goal.Name)) {
		resolvent, ok := resolveWith(kb, rest, goal, kbLit, gen)
		if !ok {
			continue
		}
		if resolution(kb, resolvent, seen, depth+1, deadline, gen) {
			return true
		}
	}
	return false
}
