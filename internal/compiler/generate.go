package compiler

import (
	"fmt"
	"go/format"
	"os"
	"regexp"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/regexer/internal/codegen"
	"github.com/KromDaniel/regexer/internal/errors"
)

// Generate compiles input and writes a Go file declaring the pattern description,
// the regex and a compiled *regexp.Regexp. The regex is compiled with the regexp
// package first so that a file that would panic at init is never written.
func (c *Compiler) Generate(input string) error {
	result, err := c.Compile(input)
	if err != nil {
		return err
	}

	c.logger.Section("Generate")

	if _, err := regexp.Compile(result.Pattern); err != nil {
		return errors.WithStackTraceAndPrefix(err, "pattern %q is not accepted by regexp", result.Pattern)
	}

	file := c.render(result)

	c.logger.Log("Writing %s (package %s)", c.config.OutputFile, c.config.Package)

	if err := file.Save(c.config.OutputFile); err != nil {
		return errors.Errorf("failed to save file: %w", err)
	}

	if err := formatFile(c.config.OutputFile); err != nil {
		return errors.Errorf("failed to format file: %w", err)
	}

	return nil
}

// render builds the jen file for result without touching the filesystem.
func (c *Compiler) render(result *Result) *jen.File {
	names := codegen.NamesFor(c.config.Name, !c.config.Unexported)

	file := jen.NewFile(c.config.Package)
	file.HeaderComment(codegen.GeneratedHeader)

	file.Comment(fmt.Sprintf("%s is the pattern description %s was compiled from.", names.Source, names.Regexp))
	file.Const().Id(names.Source).Op("=").Lit(result.Input)
	file.Line()

	file.Comment(fmt.Sprintf("%s is the regular expression generated for %s.", names.Pattern, names.Source))
	file.Const().Id(names.Pattern).Op("=").Lit(result.Pattern)
	file.Line()

	file.Comment(fmt.Sprintf("%s matches %s.", names.Regexp, names.Source))
	file.Var().Id(names.Regexp).Op("=").
		Qual(codegen.RegexpPackage, codegen.MustCompileName).
		Call(jen.Id(names.Pattern))

	return file
}

// formatFile formats a Go source file using gofmt.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
