package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regexerrors "github.com/KromDaniel/regexer/internal/errors"
	"github.com/KromDaniel/regexer/pkg/regexer"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"regexer"}, args...))

	return stdout.String(), stderr.String(), err
}

func TestAppCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"flat", []string{"letters(upcase=True) | glob(rest=True) | whitespace | numbers"}, "[A-Z]+.*\\s[0-9]+\n"},
		{"groups", []string{"group(letters(upcase=True) | glob(rest=True)) | whitespace | group(numbers)"}, "([A-Z]+.*)\\s([0-9]+)\n"},
		{"checked", []string{"--check", "letter(select=3, upcase=True)"}, "[A-Z]{3}\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runApp(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestAppVerbose(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runApp(t, "--verbose", "numbers")
	require.NoError(t, err)
	assert.Equal(t, "[0-9]+\n", stdout)
	assert.Contains(t, stderr, "section=Transpile")
}

func TestAppNoArgument(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no argument provided")

	var exitErr regexerrors.ErrorWithExitCode
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode)
}

func TestAppCompileError(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, "numbers | foo")
	require.Error(t, err)
	assert.Empty(t, stdout)

	var unknown regexer.UnknownPrimitiveError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "foo", unknown.Name)
}

func TestAppGoOut(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "date.go")

	stdout, _, err := runApp(t,
		"--go-out", out,
		"--go-name", "Year",
		"--go-package", "dates",
		"number(select=4)",
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package dates")
	assert.Contains(t, string(src), `YearPattern = "[0-9]{4}"`)
	assert.Contains(t, string(src), "var Year = regexp.MustCompile(YearPattern)")
}

func TestVerboseRequested(t *testing.T) {
	t.Setenv(envVerbose, "")

	assert.True(t, verboseRequested([]string{"regexer", "--verbose=true", "numbers"}))
	assert.True(t, verboseRequested([]string{"regexer", "--verbose", "numbers"}))
	assert.False(t, verboseRequested([]string{"regexer", "numbers"}))
	assert.False(t, verboseRequested([]string{"regexer", "--verbose=false", "numbers"}))
}

func TestVerboseRequestedFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{"False", false},
		{"FALSE", false},
		{"0", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(envVerbose, tt.value)

			assert.Equal(t, tt.want, verboseRequested([]string{"regexer", "numbers"}))
		})
	}
}

func TestVerboseRequestedFlagOverridesEnv(t *testing.T) {
	t.Setenv(envVerbose, "true")

	assert.False(t, verboseRequested([]string{"regexer", "--verbose=false", "numbers"}))
}
