package fol

// alphabet is the symbol set the fresh-variable generator composes names
// from. original_source/resolution.py's gen_var draws single-letter names
// from this same six-symbol set before falling back to multi-letter
// combinations; spec.md is explicit that the exact naming scheme is not
// observable, so only the alphabet and the base-6 composition idea are kept
// here, not the original's particular (list-reversal-based) construction.
const alphabet = "pqrxyz"

// NameGenerator hands out variable display names guaranteed distinct from
// every other name it has produced. It carries no other state and is safe
// to scope to a single Ask call.
type NameGenerator struct{ n int }

// NewNameGenerator returns a generator starting from the first name.
func NewNameGenerator() *NameGenerator { return &NameGenerator{} }

// Next returns the next fresh name: single letters first, then base-6
// combinations over alphabet once the single letters are exhausted.
func (g *NameGenerator) Next() string {
	n := g.n
	g.n++
	base := len(alphabet)
	if n < base {
		return string(alphabet[n])
	}
	var buf []byte
	for {
		buf = append([]byte{alphabet[n%base]}, buf...)
		n = n/base - 1
		if n < 0 {
			break
		}
	}
	return string(buf)
}

// StandardizeApartTracking behaves like StandardizeApart but also returns
// the literal in the copy corresponding to track, or nil if track does not
// belong to c. The prover uses this to keep hold of "the literal we are
// about to resolve on" across the standardize-apart copy.
func StandardizeApartTracking(c *Clause, ids *idSource, gen *NameGenerator, track *Literal) (*Clause, *Literal) {
	cp, tracked := c.copyTracking(ids, track)
	renamed := make(map[*Variable]bool)
	for _, l := range cp.Literals() {
		for _, a := range l.Args {
			if v, ok := a.(*Variable); ok && !renamed[v] {
				v.Rename(gen.Next())
				renamed[v] = true
			}
		}
	}
	return cp, tracked
}

// StandardizeApart returns a copy of c whose variables are fresh objects
// with names drawn from gen, disjoint from any other clause's variables in
// the same resolution branch (spec §4.F). Identity freshness is already
// guaranteed by Clause.Copy's per-copy variable map; renaming here only
// keeps printed/debugged clauses readable — unification and the canonical
// clause id never consult a variable's name.
func StandardizeApart(c *Clause, ids *idSource, gen *NameGenerator) *Clause {
	cp, _ := StandardizeApartTracking(c, ids, gen, nil)
	return cp
}
