package syntax

import (
	"github.com/pkg/errors"

	fol "github.com/avinashsubr/Resolution-Inference-FOL"
)

// ParseQuery parses sentence as a single ground literal to ask the engine
// about — a bare predicate or its negation, nothing built from &, | or =>.
// Open (non-ground) queries are out of scope (see Non-goals), so every
// argument must be a constant.
func ParseQuery(kb *fol.KB, sentence string) (*fol.Literal, error) {
	root, err := NewParser(sentence).Parse()
	if err != nil {
		return nil, err
	}

	negated := false
	pred, ok := root.(*Predicate)
	if !ok {
		not, ok := root.(*Not)
		if !ok {
			return nil, &SyntaxError{Sentence: sentence, Err: errors.New("a query must be a single literal, not a compound sentence")}
		}
		pred, ok = not.Operand.(*Predicate)
		if !ok {
			return nil, &SyntaxError{Sentence: sentence, Err: errors.New("a query must be a single literal, not a compound sentence")}
		}
		negated = true
	}

	args := make([]fol.Term, len(pred.Args))
	for i, a := range pred.Args {
		c, ok := a.(Constant)
		if !ok {
			return nil, &SyntaxError{Sentence: sentence, Err: errors.Errorf("query argument %q must be a constant, open queries are not supported", a.termString())}
		}
		args[i] = kb.Constants.Intern(c.Name)
	}

	name := pred.Name
	if negated {
		name = "-" + name
	}
	return fol.NewLiteral(name, args...), nil
}
