package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/regexer/internal/compiler"
	"github.com/KromDaniel/regexer/internal/errors"
	"github.com/KromDaniel/regexer/internal/tui"
	"github.com/KromDaniel/regexer/pkg/regexer"
)

const (
	flagVerbose      = "verbose"
	flagCheck        = "check"
	flagGoOut        = "go-out"
	flagGoPackage    = "go-package"
	flagGoName       = "go-name"
	flagGoUnexported = "go-unexported"
	flagValue        = "value"

	envVerbose = "REGEXER_VERBOSE"
	envCheck   = "REGEXER_CHECK"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:      "regexer",
		Usage:     "Compile a pattern description into a regular expression",
		UsageText: `regexer [options] "letters(upcase=True) | glob(rest=True) | whitespace | numbers"`,
		Version:   Version,
		Description: `Primitives are separated by " | ":

   letter(upcase=True, select=3)  one letter, optionally repeated select times
   letters(upcase=False)          one or more letters
   glob(rest=True)                any character, or any run of characters with rest=True
   whitespace                     one whitespace character
   number(select=2)               one digit, optionally repeated select times
   numbers                        one or more digits
   group(...)                     a regex group around other primitives`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagVerbose,
				Usage:   "Log every compilation stage to stderr",
				EnvVars: []string{envVerbose},
			},
			&cli.BoolFlag{
				Name:    flagCheck,
				Usage:   "Verify that the result is accepted by Go's regexp package",
				EnvVars: []string{envCheck},
			},
			&cli.StringFlag{
				Name:  flagGoOut,
				Usage: "Write a Go source file declaring the compiled pattern instead of printing it",
			},
			&cli.StringFlag{
				Name:  flagGoPackage,
				Usage: "Package name for --go-out",
				Value: "patterns",
			},
			&cli.StringFlag{
				Name:  flagGoName,
				Usage: "Base identifier for --go-out declarations",
				Value: "Pattern",
			},
			&cli.BoolFlag{
				Name:  flagGoUnexported,
				Usage: "Generate unexported identifiers for --go-out",
			},
		},
		Commands: []*cli.Command{
			editCommand(),
		},
		Action: withPanicHandling(runCompile),
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Edit a pattern description interactively; Enter compiles, Esc quits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagValue,
				Usage: "Initial pattern description",
			},
		},
		Action: withPanicHandling(func(c *cli.Context) error {
			return tui.Run(c.Context, c.String(flagValue))
		}),
	}
}

func runCompile(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.ErrorWithExitCode{Err: errors.Errorf("no argument provided"), ExitCode: 1}
	}

	input := c.Args().First()

	if out := c.String(flagGoOut); out != "" {
		return regexer.Generate(regexer.Options{
			Input:      input,
			Name:       c.String(flagGoName),
			OutputFile: out,
			Package:    c.String(flagGoPackage),
			Unexported: c.Bool(flagGoUnexported),
			Verbose:    c.Bool(flagVerbose),
		})
	}

	comp := compiler.New(compiler.Config{Verbose: c.Bool(flagVerbose)})
	comp.SetLogOutput(c.App.ErrWriter)

	result, err := comp.Compile(input)
	if err != nil {
		return err
	}

	if c.Bool(flagCheck) {
		if err := regexer.Check(result.Pattern); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(c.App.Writer, result.Pattern)

	return err
}

// withPanicHandling turns a panic inside action into an error carrying the stack trace.
func withPanicHandling(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		defer errors.Recover(func(cause error) {
			err = cause
		})

		return action(c)
	}
}
