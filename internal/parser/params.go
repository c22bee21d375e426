package parser

import (
	"slices"

	"github.com/KromDaniel/regexer/internal/errors"
	"github.com/KromDaniel/regexer/internal/tokenizer"
)

// parameter is one key=value pair read from a parameter span.
type parameter struct {
	key   string
	value tokenizer.Token
	pos   int
}

// parameterList holds the pairs of a single primitive in source order.
type parameterList struct {
	primitive string
	pos       int
	items     []parameter
}

// parameters reads the optional "(key=value, ...)" span that follows the identifier
// at the cursor, possibly after whitespace. Parameter spans are flat, so the first ')'
// closes them. When required is set, a primitive without a span is an error.
func (p *parser) parameters(tok tokenizer.Token, required bool, allowed ...string) (parameterList, error) {
	list := parameterList{primitive: tok.Text, pos: tok.Pos}

	p.pos++

	open := p.openParen(p.pos)
	if open < 0 {
		if required {
			return list, errors.New(MissingParameterError{
				Primitive: tok.Text,
				Parameter: allowed[0],
				Pos:       tok.Pos,
			})
		}
		return list, nil
	}

	closing := -1

	for i := open + 1; i < len(p.tokens); i++ {
		if p.tokens[i].Kind == tokenizer.RightParen {
			closing = i
			break
		}
	}

	if closing < 0 {
		return list, errors.New(UnterminatedError{Primitive: tok.Text, Pos: tok.Pos})
	}

	items, err := readParameters(tok, p.tokens[open+1:closing], allowed)
	if err != nil {
		return list, err
	}

	list.items = items
	p.pos = closing + 1

	return list, nil
}

// readParameters scans key=value pairs, tolerating any amount of whitespace and commas
// between the pairs and around '='.
func readParameters(tok tokenizer.Token, span []tokenizer.Token, allowed []string) ([]parameter, error) {
	var items []parameter

	invalid := func(key, reason string, pos int) error {
		return errors.New(InvalidParameterError{Primitive: tok.Text, Parameter: key, Reason: reason, Pos: pos})
	}

	i := 0
	skip := func() {
		for i < len(span) && (span[i].Kind == tokenizer.Whitespace || span[i].Kind == tokenizer.Comma) {
			i++
		}
	}

	for {
		skip()
		if i >= len(span) {
			break
		}

		keyTok := span[i]
		if keyTok.Kind != tokenizer.Parameter && keyTok.Kind != tokenizer.Identifier {
			return nil, invalid("", "unexpected "+keyTok.Kind.String()+", expected a parameter name", keyTok.Pos)
		}

		if !slices.Contains(allowed, keyTok.Text) {
			return nil, invalid(keyTok.Text, "unknown parameter", keyTok.Pos)
		}

		i++
		skip()

		if i >= len(span) || span[i].Kind != tokenizer.Equals {
			return nil, invalid(keyTok.Text, "expected '='", keyTok.Pos)
		}

		i++
		skip()

		if i >= len(span) {
			return nil, invalid(keyTok.Text, "missing value", keyTok.Pos)
		}

		value := span[i]
		if value.Kind != tokenizer.IntLiteral && !value.IsBool() {
			return nil, invalid(keyTok.Text, "unexpected "+value.Kind.String()+" value", value.Pos)
		}

		items = append(items, parameter{key: keyTok.Text, value: value, pos: keyTok.Pos})
		i++
	}

	return items, nil
}

// casing resolves the upcase parameter. True alone selects Upcase and False alone
// selects Downcase; both or neither leave the casing unset.
func (l parameterList) casing() (*Casing, error) {
	var sawTrue, sawFalse bool

	for _, item := range l.items {
		if item.key != ParamUpcase {
			continue
		}

		switch item.value.Kind {
		case tokenizer.BoolTrue:
			sawTrue = true
		case tokenizer.BoolFalse:
			sawFalse = true
		default:
			return nil, l.wrongKind(item, "expected True or False")
		}
	}

	var casing Casing

	switch {
	case sawTrue && !sawFalse:
		casing = Upcase
	case sawFalse && !sawTrue:
		casing = Downcase
	default:
		return nil, nil
	}

	return &casing, nil
}

// integer returns the first integer value given for key, or nil if the key is absent.
func (l parameterList) integer(key string) (*uint32, error) {
	for _, item := range l.items {
		if item.key != key {
			continue
		}

		if item.value.Kind != tokenizer.IntLiteral {
			return nil, l.wrongKind(item, "expected an integer")
		}

		value := item.value.Value

		return &value, nil
	}

	return nil, nil
}

// requiredBool returns the first boolean value given for key.
func (l parameterList) requiredBool(key string) (bool, error) {
	for _, item := range l.items {
		if item.key != key {
			continue
		}

		if !item.value.IsBool() {
			return false, l.wrongKind(item, "expected True or False")
		}

		return item.value.Kind == tokenizer.BoolTrue, nil
	}

	return false, errors.New(MissingParameterError{Primitive: l.primitive, Parameter: key, Pos: l.pos})
}

func (l parameterList) wrongKind(item parameter, reason string) error {
	return errors.New(InvalidParameterError{
		Primitive: l.primitive,
		Parameter: item.key,
		Reason:    reason,
		Pos:       item.value.Pos,
	})
}
