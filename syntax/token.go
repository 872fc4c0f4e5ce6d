// Package syntax lexes and parses the surface syntax for Horn-like
// first-order sentences, normalizes them to conjunctive normal form, and
// splits the result into the clause representation the fol package proves
// over.
package syntax

import "fmt"

// itemType classifies a lexical item, following the item/itemType split
// used by text/template/parse-style lexers (and, in this pack, by the
// teacher's dlengine item shape): a single tagged union of token kinds
// rather than one Go type per token.
type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemLParen
	itemRParen
	itemComma
	itemNot
	itemAnd
	itemOr
	itemImplies
	itemIdent // a bare word; parser decides variable/constant/predicate by case and position
)

// item is one lexical token: its kind, its literal text, and its byte
// offset in the input for error messages.
type item struct {
	typ itemType
	val string
	pos int
}

func (it item) String() string {
	switch it.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return it.val
	}
	return fmt.Sprintf("%q", it.val)
}
