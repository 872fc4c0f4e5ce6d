package syntax

import "github.com/pkg/errors"

// LexicalError reports an unrecognized character or malformed token.
// Sentence carries the whole input line the bad token came from, since
// that is what a caller logs or reports back to a user — position alone
// isn't useful without the text it indexes into.
type LexicalError struct {
	Sentence string
	Pos      int
	Err      error
}

func (e *LexicalError) Error() string {
	return errors.Wrapf(e.Err, "lexical error in %q at byte %d", e.Sentence, e.Pos).Error()
}

func (e *LexicalError) Unwrap() error { return e.Err }

// SyntaxError reports a token the parser did not expect for the
// construction it was in the middle of. Sentence is the affected sentence
// in full, per the driver's "report the sentence, not just the token"
// policy.
type SyntaxError struct {
	Sentence string
	Pos      int
	Err      error
}

func (e *SyntaxError) Error() string {
	return errors.Wrapf(e.Err, "syntax error in %q at byte %d", e.Sentence, e.Pos).Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }
