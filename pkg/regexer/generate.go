package regexer

import (
	"fmt"

	"github.com/KromDaniel/regexer/internal/codegen"
	"github.com/KromDaniel/regexer/internal/compiler"
)

// Options configures Go source generation.
type Options struct {
	// Input is the pattern description to compile
	Input string

	// Name is the base identifier for generated declarations (e.g., "Date" generates Date, DateSource and DatePattern)
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Unexported generates identifiers starting with a lowercase letter
	Unexported bool

	// Verbose logs every pipeline stage to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Input == "" {
		return fmt.Errorf("input cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !codegen.IsIdentifier(codegen.NamesFor(o.Name, !o.Unexported).Regexp) {
		return fmt.Errorf("name %q is not a valid Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !codegen.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", o.Package)
	}
	return nil
}

// Generate compiles the pattern description and writes a Go file declaring it.
// It returns an error if the options or the description are invalid, or if the file
// cannot be written.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Name:       opts.Name,
		OutputFile: opts.OutputFile,
		Package:    opts.Package,
		Unexported: opts.Unexported,
		Verbose:    opts.Verbose,
	})

	if err := c.Generate(opts.Input); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
