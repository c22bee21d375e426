// Package codegen provides code generation helpers and constants.
package codegen

import (
	"go/token"
	"unicode"
	"unicode/utf8"
)

// Identifiers and comments used in generated code
const (
	GeneratedHeader = "Code generated by regexer. DO NOT EDIT."
	RegexpPackage   = "regexp"
	MustCompileName = "MustCompile"
	SourceSuffix    = "Source"
	PatternSuffix   = "Pattern"
)

// Names holds the identifiers declared for one generated pattern.
type Names struct {
	Regexp  string
	Source  string
	Pattern string
}

// NamesFor derives the generated identifiers from a base name. Unexported names
// start with a lowercase letter.
func NamesFor(name string, exported bool) Names {
	base := UpperFirst(name)
	if !exported {
		base = LowerFirst(name)
	}
	return Names{
		Regexp:  base,
		Source:  base + SourceSuffix,
		Pattern: base + PatternSuffix,
	}
}

// IsIdentifier reports whether name can be used as a Go identifier for a generated declaration.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
