// Package compiler runs the tokenize, parse and transpile stages and emits Go source for the result.
package compiler

import (
	"io"

	"github.com/KromDaniel/regexer/internal/parser"
	"github.com/KromDaniel/regexer/internal/tokenizer"
	"github.com/KromDaniel/regexer/internal/transpiler"
)

// Config holds the configuration for compilation and code generation.
type Config struct {
	Name       string // Base identifier for generated declarations
	OutputFile string
	Package    string
	Unexported bool // Generate unexported identifiers
	Verbose    bool // Enable verbose logging of pipeline stages
}

// Result holds the output of every pipeline stage for one input.
type Result struct {
	Input     string
	Tokens    []tokenizer.Token
	Functions []parser.PatternFunction
	Pattern   string
}

// Compiler turns pattern descriptions into regular expressions. A Compiler keeps no
// state between calls besides its configuration and logger.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// SetLogOutput redirects verbose logging.
func (c *Compiler) SetLogOutput(w io.Writer) {
	c.logger.SetOutput(w)
}

// Compile runs all three stages on input. Each stage finishes before the next starts,
// and the first error aborts the whole compilation.
func (c *Compiler) Compile(input string) (*Result, error) {
	c.logger.Section("Tokenize")
	c.logger.Log("Input: %s", input)

	tokens, err := tokenizer.Tokenize(input)
	if err != nil {
		c.logger.Log("Tokenize failed: %v", err)
		return nil, err
	}

	c.logger.Log("Tokens: %d", len(tokens))
	for _, tok := range tokens {
		if tok.Kind == tokenizer.Whitespace {
			continue
		}
		c.logger.Log("  %d: %s", tok.Pos, tok)
	}

	c.logger.Section("Parse")

	functions, err := parser.Parse(tokens)
	if err != nil {
		c.logger.Log("Parse failed: %v", err)
		return nil, err
	}

	c.logger.Log("Top-level functions: %d", len(functions))
	for _, fn := range functions {
		c.logger.Log("  %s", parser.FormatFunction(fn))
	}

	c.logger.Section("Transpile")

	pattern := transpiler.Transpile(functions)
	c.logger.Log("Pattern: %s", pattern)

	return &Result{
		Input:     input,
		Tokens:    tokens,
		Functions: functions,
		Pattern:   pattern,
	}, nil
}
