// Package parser builds the pattern-function tree from a token sequence.
package parser

import "fmt"

// Casing selects the character class used by letter primitives.
type Casing int

const (
	Upcase Casing = iota
	Downcase
)

var casingNames = [...]string{
	Upcase:   "Upcase",
	Downcase: "Downcase",
}

func (c Casing) String() string {
	if c < 0 || int(c) >= len(casingNames) {
		return fmt.Sprintf("Casing(%d)", int(c))
	}
	return casingNames[c]
}

// PatternFunction is a node of the parsed tree. The set of implementations is closed.
type PatternFunction interface {
	patternFunction()
}

// Letter matches a single letter, optionally repeated exactly Select times.
// A nil Casing means lowercase.
type Letter struct {
	Casing *Casing
	Select *uint32
}

// Letters matches one or more letters.
type Letters struct {
	Casing *Casing
}

// Glob matches any single character, or any run of characters when Rest is set.
type Glob struct {
	Rest bool
}

// Whitespace matches a single whitespace character.
type Whitespace struct{}

// Number matches a single digit, optionally repeated exactly Select times.
type Number struct {
	Select *uint32
}

// Numbers matches one or more digits.
type Numbers struct{}

// Group wraps its children in a regex group.
type Group struct {
	Children []PatternFunction
}

func (Letter) patternFunction()     {}
func (Letters) patternFunction()    {}
func (Glob) patternFunction()       {}
func (Whitespace) patternFunction() {}
func (Number) patternFunction()     {}
func (Numbers) patternFunction()    {}
func (Group) patternFunction()      {}
