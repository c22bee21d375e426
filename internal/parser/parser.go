package parser

import (
	"github.com/KromDaniel/regexer/internal/errors"
	"github.com/KromDaniel/regexer/internal/tokenizer"
)

// Primitive names accepted by the parser.
const (
	PrimitiveLetter     = "letter"
	PrimitiveLetters    = "letters"
	PrimitiveGlob       = "glob"
	PrimitiveWhitespace = "whitespace"
	PrimitiveNumber     = "number"
	PrimitiveNumbers    = "numbers"
	PrimitiveGroup      = "group"
)

// Parameter keys accepted inside a primitive's parameter list.
const (
	ParamUpcase = "upcase"
	ParamSelect = "select"
	ParamRest   = "rest"
)

type parser struct {
	tokens []tokenizer.Token
	pos    int
}

// openParen returns the index of the '(' at from, allowing whitespace before it,
// or -1 when the next significant token is something else.
func (p *parser) openParen(from int) int {
	for i := from; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case tokenizer.Whitespace:
			continue
		case tokenizer.LeftParen:
			return i
		}
		return -1
	}
	return -1
}

// Parse builds the pattern-function tree for tokens. Whitespace, pipes and commas
// between primitives carry no meaning and are skipped. Any error aborts the parse;
// no partial tree is returned.
func Parse(tokens []tokenizer.Token) ([]PatternFunction, error) {
	p := &parser{tokens: tokens}
	return p.parse()
}

func (p *parser) parse() ([]PatternFunction, error) {
	functions := make([]PatternFunction, 0)

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.Kind != tokenizer.Identifier {
			p.pos++
			continue
		}

		fn, err := p.parsePrimitive(tok)
		if err != nil {
			return nil, err
		}

		functions = append(functions, fn)
	}

	return functions, nil
}

// parsePrimitive dispatches on the identifier at the cursor and leaves the cursor
// just past everything the primitive consumed.
func (p *parser) parsePrimitive(tok tokenizer.Token) (PatternFunction, error) {
	switch tok.Text {
	case PrimitiveLetter, PrimitiveLetters:
		params, err := p.parameters(tok, false, ParamUpcase, ParamSelect)
		if err != nil {
			return nil, err
		}

		casing, err := params.casing()
		if err != nil {
			return nil, err
		}

		if tok.Text == PrimitiveLetters {
			// select is accepted but has no meaning for a run of letters
			if _, err := params.integer(ParamSelect); err != nil {
				return nil, err
			}
			return Letters{Casing: casing}, nil
		}

		sel, err := params.integer(ParamSelect)
		if err != nil {
			return nil, err
		}

		return Letter{Casing: casing, Select: sel}, nil

	case PrimitiveNumber:
		params, err := p.parameters(tok, false, ParamSelect)
		if err != nil {
			return nil, err
		}

		sel, err := params.integer(ParamSelect)
		if err != nil {
			return nil, err
		}

		return Number{Select: sel}, nil

	case PrimitiveNumbers:
		p.pos++
		return Numbers{}, nil

	case PrimitiveWhitespace:
		p.pos++
		return Whitespace{}, nil

	case PrimitiveGlob:
		params, err := p.parameters(tok, true, ParamRest)
		if err != nil {
			return nil, err
		}

		rest, err := params.requiredBool(ParamRest)
		if err != nil {
			return nil, err
		}

		return Glob{Rest: rest}, nil

	case PrimitiveGroup:
		return p.parseGroup(tok)

	default:
		return nil, errors.New(UnknownPrimitiveError{Name: tok.Text, Pos: tok.Pos})
	}
}

// parseGroup locates the group's closing parenthesis by tracking nesting depth from
// the opening one and parses the enclosed tokens recursively.
func (p *parser) parseGroup(tok tokenizer.Token) (PatternFunction, error) {
	open := p.openParen(p.pos + 1)
	if open < 0 {
		return nil, errors.New(InvalidParameterError{
			Primitive: PrimitiveGroup,
			Reason:    "expected '(' after group",
			Pos:       tok.Pos,
		})
	}

	depth := 0
	closing := -1

	for i := open; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case tokenizer.LeftParen:
			depth++
		case tokenizer.RightParen:
			depth--
		}

		if depth == 0 {
			closing = i
			break
		}
	}

	if closing < 0 {
		return nil, errors.New(UnterminatedError{Primitive: PrimitiveGroup, Pos: tok.Pos})
	}

	children, err := Parse(p.tokens[open+1 : closing])
	if err != nil {
		return nil, err
	}

	p.pos = closing + 1

	return Group{Children: children}, nil
}
