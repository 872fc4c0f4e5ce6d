package syntax

import (
	"unicode"

	"github.com/pkg/errors"
)

// Parser is a one-token-lookahead recursive descent parser over the
// connective grammar:
//
//	sentence     := implication
//	implication  := disjunction ( "=>" implication )?      (right-associative)
//	disjunction  := conjunction ( "|" conjunction )*
//	conjunction  := negation ( "&" negation )*
//	negation     := "~" negation | atom
//	atom         := predicate | "(" sentence ")"
//	predicate    := IDENT "(" term ("," term)* ")"
//	term         := IDENT
//
// An IDENT starting with a lowercase letter is a Variable when used as a
// term; one starting with uppercase is a Constant. A predicate name is
// distinguished from a term by the "(" that follows it, the same
// disambiguation logicparser.py's grammar relies on. The lexer reads a
// lowercase letter as a one-letter IDENT, so a lowercase-leading predicate
// name can only be a single letter.
type Parser struct {
	src string
	lx  *lexer
	tok item
}

// NewParser returns a parser over one sentence of source text.
func NewParser(src string) *Parser {
	p := &Parser{src: src, lx: lex(src)}
	p.advance()
	return p
}

func (p *Parser) advance() { p.tok = p.lx.nextItem() }

func (p *Parser) syntaxErrf(format string, args ...interface{}) error {
	return &SyntaxError{Sentence: p.src, Pos: p.tok.pos, Err: errors.Errorf(format, args...)}
}

// Parse parses one complete sentence and returns its root node.
func (p *Parser) Parse() (Node, error) {
	if p.tok.typ == itemError {
		return nil, &LexicalError{Sentence: p.src, Pos: p.tok.pos, Err: errors.New(p.tok.val)}
	}
	n, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if p.tok.typ != itemEOF {
		return nil, p.syntaxErrf("unexpected trailing input %s", p.tok)
	}
	populateParents(n, nil)
	return n, nil
}

func (p *Parser) parseImplication() (Node, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.tok.typ == itemImplies {
		p.advance()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return NewBinOp(Implies, left, right), nil
	}
	return left, nil
}

func (p *Parser) parseDisjunction() (Node, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.tok.typ == itemOr {
		p.advance()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = NewBinOp(Or, left, right)
	}
	return left, nil
}

func (p *Parser) parseConjunction() (Node, error) {
	left, err := p.parseNegation()
	if err != nil {
		return nil, err
	}
	for p.tok.typ == itemAnd {
		p.advance()
		right, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		left = NewBinOp(And, left, right)
	}
	return left, nil
}

func (p *Parser) parseNegation() (Node, error) {
	if p.tok.typ == itemNot {
		p.advance()
		operand, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		return NewNot(operand), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Node, error) {
	switch p.tok.typ {
	case itemLParen:
		p.advance()
		n, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if p.tok.typ != itemRParen {
			return nil, p.syntaxErrf("expected \")\", got %s", p.tok)
		}
		p.advance()
		return n, nil
	case itemIdent:
		return p.parsePredicate()
	case itemError:
		return nil, &LexicalError{Sentence: p.src, Pos: p.tok.pos, Err: errors.New(p.tok.val)}
	default:
		return nil, p.syntaxErrf("expected a predicate or \"(\", got %s", p.tok)
	}
}

func (p *Parser) parsePredicate() (Node, error) {
	name := p.tok.val
	p.advance()
	if p.tok.typ != itemLParen {
		return nil, p.syntaxErrf("expected \"(\" after predicate name %q, got %s", name, p.tok)
	}
	p.advance()

	var args []Term
	if p.tok.typ != itemRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
			if p.tok.typ != itemComma {
				break
			}
			p.advance()
		}
	}
	if p.tok.typ != itemRParen {
		return nil, p.syntaxErrf("expected \")\" to close predicate %q, got %s", name, p.tok)
	}
	p.advance()
	return NewPredicate(name, args), nil
}

func (p *Parser) parseTerm() (Term, error) {
	if p.tok.typ != itemIdent {
		return nil, p.syntaxErrf("expected a term, got %s", p.tok)
	}
	name := p.tok.val
	p.advance()
	r := []rune(name)[0]
	if unicode.IsUpper(r) {
		return Constant{Name: name}, nil
	}
	return Variable{Name: name}, nil
}
