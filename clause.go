package fol

import "strings"

// idSource hands out increasing clause ids. One idSource is owned by each KB
// and threaded through every clause created in its lifetime — including the
// ephemeral resolvents created during a single Ask — so that ids are unique
// within one engine's run without resorting to a process-wide counter.
type idSource struct{ n int }

func newIDSource() *idSource { return &idSource{} }

func (s *idSource) next() int {
	s.n++
	return s.n
}

// Clause is a disjunction of literals, represented as a doubly linked ring
// with an unexported sentinel node — the same shape as container/list's
// Element ring, which makes removing a resolved-away literal an O(1) splice
// instead of a slice rebuild (spec §3's "doubly linked list with a sentinel
// head").
type Clause struct {
	ID       int
	sentinel Literal
	size     int
}

// NewClause returns an empty clause with a fresh id drawn from ids.
func NewClause(ids *idSource) *Clause {
	c := &Clause{ID: ids.next()}
	c.sentinel.next = &c.sentinel
	c.sentinel.prev = &c.sentinel
	return c
}

// Len returns the number of literals in c.
func (c *Clause) Len() int { return c.size }

// IsEmpty reports whether c has no literals — the refutation target of the
// prover (spec §4.G: "derive the empty clause").
func (c *Clause) IsEmpty() bool { return c.size == 0 }

// PushBack appends l to the end of c's literal list and links it back to c.
func (c *Clause) PushBack(l *Literal) {
	last := c.sentinel.prev
	l.prev = last
	l.next = &c.sentinel
	last.next = l
	c.sentinel.prev = l
	l.head = c
	c.size++
}

// Remove splices l out of c. l must belong to c.
func (c *Clause) Remove(l *Literal) {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.prev, l.next, l.head = nil, nil, nil
	c.size--
}

// First returns c's first literal, or nil if c is empty.
func (c *Clause) First() *Literal {
	if c.IsEmpty() {
		return nil
	}
	return c.sentinel.next
}

// Literals returns c's literals in clause order as a slice, for callers that
// want random access or a length check rather than pointer-chasing.
func (c *Clause) Literals() []*Literal {
	ls := make([]*Literal, 0, c.size)
	for l := c.sentinel.next; l != &c.sentinel; l = l.next {
		ls = append(ls, l)
	}
	return ls
}

// canonicalID returns the clause's canonical id per spec §4.G: a tuple of
// per-literal tuples, in the clause's own order — matching
// original_source/resolution.py's convert_clause, which walks the linked
// list in order and never sorts it. Two clauses that are identical modulo
// variable identity and variable renaming, in the same literal order,
// produce the same canonicalID; this is what the resolution loop's seen set
// and factoring key on. Order is significant on purpose: which literal is
// first determines what resolution's first-literal selection resolves on
// next, so two clauses with the same literals in a different order are
// genuinely different search states, not duplicates.
func (c *Clause) canonicalID() string {
	tags := make([]string, 0, c.size)
	for l := c.sentinel.next; l != &c.sentinel; l = l.next {
		tags = append(tags, l.canonicalTag())
	}
	return strings.Join(tags, "\x01")
}

// Factor removes literals that are duplicates, by canonical tag, of an
// earlier literal in the clause, keeping the first occurrence of each. Per
// spec §4.G this runs before the empty-clause and loop-cutoff checks on
// every resolvent, since unification can make two previously distinct
// literals identical.
func (c *Clause) Factor() {
	seen := make(map[string]bool, c.size)
	for l := c.sentinel.next; l != &c.sentinel; {
		next := l.next
		tag := l.canonicalTag()
		if seen[tag] {
			c.Remove(l)
		} else {
			seen[tag] = true
		}
		l = next
	}
}

// copyTracking returns a deep copy of c — fresh Variables, shared Constants,
// a fresh id drawn from ids — and, if track is one of c's literals, the
// corresponding literal in the copy. This is how the prover standardizes a
// KB clause apart before resolving against it while still being able to
// find "the literal we resolved on" in the copy.
func (c *Clause) copyTracking(ids *idSource, track *Literal) (*Clause, *Literal) {
	cp := NewClause(ids)
	vars := make(map[*Variable]*Variable)
	var tracked *Literal
	for l := c.sentinel.next; l != &c.sentinel; l = l.next {
		nl := l.copyWith(vars)
		cp.PushBack(nl)
		if l == track {
			tracked = nl
		}
	}
	return cp, tracked
}

// Copy returns a deep copy of c with a fresh id and fresh variable objects
// (keeping their names), sharing no mutable state with c.
func (c *Clause) Copy(ids *idSource) *Clause {
	cp, _ := c.copyTracking(ids, nil)
	return cp
}

func (c *Clause) String() string {
	var b strings.Builder
	for l := c.sentinel.next; l != &c.sentinel; l = l.next {
		if l != c.sentinel.next {
			b.WriteString(" | ")
		}
		b.WriteString(l.String())
	}
	if c.IsEmpty() {
		b.WriteString("[]")
	}
	return b.String()
}
