package regexer_test

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/regexer/pkg/regexer"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"letter(upcase=True)", "[A-Z]"},
		{"letter(upcase=False)", "[a-z]"},
		{"letter(select=3, upcase=True)", "[A-Z]{3}"},
		{"letters(upcase=True) | glob(rest=True) | whitespace | numbers", `[A-Z]+.*\s[0-9]+`},
		{"group(letters(upcase=True) | glob(rest=True)) | whitespace | group(numbers)", `([A-Z]+.*)\s([0-9]+)`},
		{"group(whitespace)", `(\s)`},
		{"group(group(whitespace))", `((\s))`},
		{"group(group(group(whitespace)))", `(((\s)))`},
		{"number(select=2) | glob(rest=False) | number(select=2)", "[0-9]{2}.[0-9]{2}"},
		{"letter (upcase=True)", "[A-Z]"},
		{"number (select=3)", "[0-9]{3}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := regexer.Compile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, regexer.Check(got))
		})
	}
}

// Flat descriptions compile to the concatenation of each primitive compiled alone.
func TestCompileConcatenates(t *testing.T) {
	t.Parallel()

	primitives := []string{
		"letter(upcase=True)",
		"letters",
		"glob(rest=True)",
		"glob(rest=False)",
		"whitespace",
		"number(select=5)",
		"numbers",
	}

	var input, want string

	for i, primitive := range primitives {
		single, err := regexer.Compile(primitive)
		require.NoError(t, err)

		if i > 0 {
			input += " | "
		}

		input += primitive
		want += single
	}

	got, err := regexer.Compile(input)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompileMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		matching []string
		rejected []string
	}{
		{
			name:     "plate",
			input:    "letter(upcase=True, select=3) | number(select=4)",
			matching: []string{"ABC1234"},
			rejected: []string{"abc1234", "AB1234"},
		},
		{
			name:     "greeting",
			input:    "letters(upcase=True) | whitespace | numbers",
			matching: []string{"HELLO 42"},
			rejected: []string{"hello 42", "HELLO42"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pattern, err := regexer.Compile(tt.input)
			require.NoError(t, err)

			re := regexp.MustCompile("^" + pattern + "$")
			for _, s := range tt.matching {
				assert.True(t, re.MatchString(s), "%q should match %s", s, pattern)
			}
			for _, s := range tt.rejected {
				assert.False(t, re.MatchString(s), "%q should not match %s", s, pattern)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	_, err := regexer.Compile("foo")
	var unknown regexer.UnknownPrimitiveError
	require.True(t, errors.As(err, &unknown), "got %v", err)
	assert.Equal(t, "foo", unknown.Name)

	_, err = regexer.Compile("letter(upcase=True) | @")
	var invalid regexer.InvalidTokenError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, '@', invalid.Char)

	_, err = regexer.Compile("letter(select=99999999999)")
	var invalidInt regexer.InvalidIntegerError
	require.True(t, errors.As(err, &invalidInt), "got %v", err)

	_, err = regexer.Compile("glob")
	var missing regexer.MissingParameterError
	require.True(t, errors.As(err, &missing), "got %v", err)

	_, err = regexer.Compile("glob(rest=3)")
	var invalidParam regexer.InvalidParameterError
	require.True(t, errors.As(err, &invalidParam), "got %v", err)

	_, err = regexer.Compile("group(numbers")
	var unterminated regexer.UnterminatedError
	require.True(t, errors.As(err, &unterminated), "got %v", err)
}

func TestCompileConcurrent(t *testing.T) {
	t.Parallel()

	const input = "group(letters(upcase=True) | glob(rest=True)) | whitespace | group(numbers)"

	want, err := regexer.Compile(input)
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([]string, 32)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = regexer.Compile(input)
		}()
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestMustCompile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[0-9]+", regexer.MustCompile("numbers"))
	assert.Panics(t, func() { regexer.MustCompile("bogus") })
}

func TestCheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, regexer.Check(`[a-z]+\s`))
	require.Error(t, regexer.Check(`([a-z]`))
}

func ExampleCompile() {
	pattern, err := regexer.Compile("letters(upcase=True) | glob(rest=True) | whitespace | numbers")
	if err != nil {
		panic(err)
	}
	fmt.Println(pattern)
	// Output: [A-Z]+.*\s[0-9]+
}
