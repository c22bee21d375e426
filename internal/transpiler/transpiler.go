// Package transpiler folds a pattern-function tree into a regular expression string.
package transpiler

import (
	"strconv"
	"strings"

	"github.com/KromDaniel/regexer/internal/parser"
)

// Character classes and quantifiers emitted for each primitive.
const (
	UpperClass      = "[A-Z]"
	LowerClass      = "[a-z]"
	DigitClass      = "[0-9]"
	WhitespaceClass = `\s`
	AnyChar         = "."
	OneOrMore       = "+"
	ZeroOrMore      = "*"
)

// Transpile emits the regex for nodes in order. The result is not checked against
// any regex engine.
func Transpile(nodes []parser.PatternFunction) string {
	var b strings.Builder
	write(&b, nodes)
	return b.String()
}

func write(b *strings.Builder, nodes []parser.PatternFunction) {
	for _, node := range nodes {
		switch n := node.(type) {
		case parser.Letter:
			b.WriteString(letterClass(n.Casing))
			writeSelect(b, n.Select)
		case parser.Letters:
			b.WriteString(letterClass(n.Casing))
			b.WriteString(OneOrMore)
		case parser.Glob:
			b.WriteString(AnyChar)
			if n.Rest {
				b.WriteString(ZeroOrMore)
			}
		case parser.Whitespace:
			b.WriteString(WhitespaceClass)
		case parser.Number:
			b.WriteString(DigitClass)
			writeSelect(b, n.Select)
		case parser.Numbers:
			b.WriteString(DigitClass)
			b.WriteString(OneOrMore)
		case parser.Group:
			b.WriteByte('(')
			write(b, n.Children)
			b.WriteByte(')')
		}
	}
}

// letterClass picks the character class for casing; unset casing means lowercase.
func letterClass(casing *parser.Casing) string {
	if casing != nil && *casing == parser.Upcase {
		return UpperClass
	}
	return LowerClass
}

func writeSelect(b *strings.Builder, sel *uint32) {
	if sel == nil {
		return
	}
	b.WriteByte('{')
	b.WriteString(strconv.FormatUint(uint64(*sel), 10))
	b.WriteByte('}')
}
