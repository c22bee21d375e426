// Command regexer compiles a pattern description into a regular expression.
//
//	regexer "letters(upcase=True) | glob(rest=True) | whitespace | numbers"
//	regexer --go-out patterns/date.go --go-name Date "number(select=4) | glob(rest=False) | number(select=2)"
//	regexer edit
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KromDaniel/regexer/internal/errors"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		if verboseRequested(os.Args) {
			fmt.Fprintln(os.Stderr, errors.ErrorWithStackTrace(err))
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr errors.ErrorWithExitCode
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode)
		}

		os.Exit(1)
	}
}

// verboseRequested reports whether --verbose was passed or set through the environment.
// The cli.Context is gone once Run returns, so the flag is looked up directly.
func verboseRequested(args []string) bool {
	verbose := false

	if v, ok := os.LookupEnv(envVerbose); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			verbose = b
		}
	}

	for _, arg := range args[1:] {
		if arg == "--" {
			break
		}

		switch {
		case arg == "--verbose":
			verbose = true
		case strings.HasPrefix(arg, "--verbose="):
			if b, err := strconv.ParseBool(strings.TrimPrefix(arg, "--verbose=")); err == nil {
				verbose = b
			}
		}
	}

	return verbose
}
