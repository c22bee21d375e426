// Package regexer compiles pattern descriptions such as
// "letters(upcase=True) | glob(rest=True) | whitespace | numbers" into regular expressions.
//
// A pattern description is a " | "-separated list of primitives:
//
//	letter(upcase=True, select=3)  one letter, optionally repeated exactly select times
//	letters(upcase=False)          one or more letters
//	glob(rest=True)                any character; rest=True matches any run of characters
//	whitespace                     one whitespace character
//	number(select=2)               one digit, optionally repeated exactly select times
//	numbers                        one or more digits
//	group(...)                     a parenthesized group of primitives
package regexer

import (
	"regexp"
	"strconv"

	"github.com/KromDaniel/regexer/internal/compiler"
	"github.com/KromDaniel/regexer/internal/errors"
)

// Compile translates a pattern description into a regular expression string.
// Any lexical or syntax error aborts the compilation and no partial result is returned.
// Compile is safe for concurrent use.
func Compile(input string) (string, error) {
	result, err := compiler.New(compiler.Config{}).Compile(input)
	if err != nil {
		return "", err
	}
	return result.Pattern, nil
}

// MustCompile is like Compile but panics if the description cannot be compiled.
func MustCompile(input string) string {
	pattern, err := Compile(input)
	if err != nil {
		panic(`regexer: Compile(` + strconv.Quote(input) + `): ` + err.Error())
	}
	return pattern
}

// Check reports whether pattern is accepted by Go's regexp package.
// The compiler itself never validates its output; callers that need a usable
// *regexp.Regexp can run Check on the result.
func Check(pattern string) error {
	if _, err := regexp.Compile(pattern); err != nil {
		return errors.WithStackTraceAndPrefix(err, "pattern %q is not accepted by regexp", pattern)
	}
	return nil
}
