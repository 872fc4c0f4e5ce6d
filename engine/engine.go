// Package engine wires the fol and syntax packages into the batch Tell/Ask
// surface a driver talks to: text in, booleans and errors out. It owns the
// one KB (and therefore the one constant table and clause-id counter) for
// its lifetime, mirroring the teacher's dlengine.Engine wrapping one
// datalog.Session-equivalent store per process.
package engine

import (
	"github.com/hashicorp/go-multierror"

	fol "github.com/avinashsubr/Resolution-Inference-FOL"
	"github.com/avinashsubr/Resolution-Inference-FOL/syntax"
)

// Engine is a knowledge base plus the text frontend over it. The zero value
// is not usable; construct one with New.
type Engine struct {
	kb *fol.KB
}

// New returns an empty engine with a fresh knowledge base.
func New() *Engine {
	return &Engine{kb: fol.NewKB()}
}

// KB returns the engine's underlying knowledge base, for callers (tests,
// the driver's logging) that need clause-level detail New doesn't expose.
func (e *Engine) KB() *fol.KB { return e.kb }

// Tell parses sentence, converts it to CNF, and adds every resulting clause
// to the knowledge base — including disjunctive ones: the data model places
// no restriction on how many unnegated literals a clause carries, and
// prove.go's resolution already implements full binary resolution with
// factoring rather than a Horn-only strategy.
func (e *Engine) Tell(sentence string) error {
	clauses, err := syntax.ToClauses(e.kb, sentence)
	if err != nil {
		return err
	}
	for _, c := range clauses {
		e.kb.Tell(c)
	}
	return nil
}

// TellBatch calls Tell on every sentence, continuing past a failing one
// rather than aborting the batch. It returns a *multierror.Error aggregating
// every failure (nil if all sentences were accepted), so a driver can log
// per-sentence problems and still finish loading the rest of the KB.
func (e *Engine) TellBatch(sentences []string) error {
	var result *multierror.Error
	for _, s := range sentences {
		if err := e.Tell(s); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Ask parses query as a single ground literal and proves it by refutation
// against the knowledge base, returning the same false-for-disproved and
// false-for-inconclusive result fol.Ask does. An error return means the
// query itself could not be parsed, not that the proof failed.
func (e *Engine) Ask(query string) (bool, error) {
	lit, err := syntax.ParseQuery(e.kb, query)
	if err != nil {
		return false, err
	}
	return fol.Ask(e.kb, lit), nil
}
