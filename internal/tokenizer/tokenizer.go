package tokenizer

import (
	"strconv"
	"unicode"

	"github.com/KromDaniel/regexer/internal/errors"
)

// symbols maps single-character tokens to their kind.
var symbols = map[rune]TokenKind{
	'(': LeftParen,
	')': RightParen,
	'|': Pipe,
	' ': Whitespace,
	'=': Equals,
	',': Comma,
}

// scanner walks the input one rune at a time with a single rune of lookahead.
type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// readWhile consumes runes for as long as accept returns true.
func (s *scanner) readWhile(accept func(rune) bool) string {
	start := s.pos
	for s.pos < len(s.input) && accept(s.input[s.pos]) {
		s.pos++
	}
	return string(s.input[start:s.pos])
}

// Tokenize converts input into tokens in source order. Whitespace and pipes are
// kept as tokens; it is up to the parser to skip them.
func Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}
	tokens := make([]Token, 0, len(s.input))

	for {
		ch, ok := s.peek()
		if !ok {
			break
		}

		start := s.pos

		switch {
		case unicode.IsLetter(ch):
			word := s.readWhile(unicode.IsLetter)
			tokens = append(tokens, classifyWord(word, start, s))

		case unicode.IsDigit(ch):
			literal := s.readWhile(isAlphanumeric)
			value, err := strconv.ParseUint(literal, 10, 32)
			if err != nil {
				return nil, errors.New(InvalidIntegerError{Literal: literal, Pos: start})
			}
			tokens = append(tokens, Token{Kind: IntLiteral, Text: literal, Value: uint32(value), Pos: start})

		default:
			kind, known := symbols[ch]
			if !known {
				return nil, errors.New(InvalidTokenError{Char: ch, Pos: start})
			}
			s.pos++
			tokens = append(tokens, Token{Kind: kind, Text: string(ch), Pos: start})
		}
	}

	return tokens, nil
}

// classifyWord decides between boolean literals, parameter keys and identifiers.
// A word is a parameter key only when the very next rune is '='.
func classifyWord(word string, pos int, s *scanner) Token {
	switch word {
	case TrueLiteral:
		return Token{Kind: BoolTrue, Text: word, Pos: pos}
	case FalseLiteral:
		return Token{Kind: BoolFalse, Text: word, Pos: pos}
	}

	if next, ok := s.peek(); ok && next == '=' {
		return Token{Kind: Parameter, Text: word, Pos: pos}
	}

	return Token{Kind: Identifier, Text: word, Pos: pos}
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
