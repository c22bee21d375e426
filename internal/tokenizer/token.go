// Package tokenizer turns pattern descriptions such as "letter(upcase=True) | whitespace"
// into an ordered sequence of lexical tokens.
package tokenizer

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// Identifier is a bare word, usually a primitive name like "letter" or "group".
	Identifier TokenKind = iota
	// Parameter is a word directly followed by '=', e.g. "upcase" in "upcase=True".
	Parameter
	// IntLiteral is an unsigned decimal integer.
	IntLiteral
	LeftParen
	RightParen
	Whitespace
	Equals
	BoolTrue
	BoolFalse
	Pipe
	Comma
)

// Boolean literals recognized by the tokenizer.
const (
	TrueLiteral  = "True"
	FalseLiteral = "False"
)

var kindNames = [...]string{
	Identifier: "Identifier",
	Parameter:  "Parameter",
	IntLiteral: "IntLiteral",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Whitespace: "Whitespace",
	Equals:     "Equals",
	BoolTrue:   "BoolTrue",
	BoolFalse:  "BoolFalse",
	Pipe:       "Pipe",
	Comma:      "Comma",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a single lexical unit. Text holds the word for Identifier and Parameter
// tokens and the source literal for every other kind; Value is only meaningful for
// IntLiteral tokens. Pos is the rune offset of the token in the input.
type Token struct {
	Kind  TokenKind
	Text  string
	Value uint32
	Pos   int
}

// IsBool reports whether the token is one of the boolean literals.
func (t Token) IsBool() bool {
	return t.Kind == BoolTrue || t.Kind == BoolFalse
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, Parameter:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case IntLiteral:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value)
	default:
		return t.Kind.String()
	}
}
