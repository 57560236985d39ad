package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/paroot"
)

// run executes the root command with input on stdin and returns what was
// written to stdout and stderr.
func run(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPromptCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		args           []string
		expectedOut    string
		expectedStderr string
	}{
		{
			name:           "char",
			input:          "ab\nx\n",
			args:           []string{"char", "--prompt", "C: "},
			expectedOut:    "x\n",
			expectedStderr: "C: Retry: ",
		},
		{
			name:           "int",
			input:          "abc\n42\n",
			args:           []string{"int", "-p", "N: "},
			expectedOut:    "42\n",
			expectedStderr: "N: Retry: ",
		},
		{
			name:        "long",
			input:       "2147483648\n",
			args:        []string{"long"},
			expectedOut: "2147483648\n",
		},
		{
			name:           "float",
			input:          "1e39\n1.5\n",
			args:           []string{"float"},
			expectedOut:    "1.5\n",
			expectedStderr: "Retry: ",
		},
		{
			name:        "double",
			input:       "-2.5e-3\n",
			args:        []string{"double"},
			expectedOut: "-0.0025\n",
		},
		{
			name:           "string keeps spaces",
			input:          "  hi there \n",
			args:           []string{"string", "--prompt", "S: "},
			expectedOut:    "  hi there \n",
			expectedStderr: "S: ",
		},
		{
			name:        "string at end of stream",
			input:       "",
			args:        []string{"string"},
			expectedOut: "\n",
		},
		{
			name:        "last line without terminator",
			input:       "7",
			args:        []string{"int"},
			expectedOut: "7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := run(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOut, stdout)
			assert.Equal(t, tt.expectedStderr, stderr)
		})
	}
}

func TestPromptStopsAtEndOfStream(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "abc\n", "int")
	require.Error(t, err)
	assert.True(t, errors.Is(err, paroot.ErrRetryLimit), "got %v", err)
	assert.Empty(t, stdout)
}

func TestPromptMaxAttempts(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "a\nb\n3\n", "int", "--max-attempts", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, paroot.ErrRetryLimit)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Retry: "), "stderr: %q", stderr)
}

func TestPromptDebugLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "x\n5\n", "int", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "prompt.retry")
}

func TestPromptRejectsArgs(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "1\n", "int", "extra")
	assert.Error(t, err)
}

func TestArrayCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "empty int", args: []string{"array", "int"}, expected: "[]\n"},
		{name: "ints", args: []string{"array", "int", "1", "2", "3"}, expected: "[1, 2, 3]\n"},
		{name: "floats", args: []string{"array", "float", "0.5", "2"}, expected: "[0.50, 2.00]\n"},
		{name: "doubles with negative", args: []string{"array", "double", "--", "1.5", "-2"}, expected: "[1.50, -2.00]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestArrayCommandErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "array", "bool", "1")
	assert.ErrorContains(t, err, "unknown array type")

	_, _, err = run(t, "", "array", "int", "1", "two")
	assert.ErrorIs(t, err, paroot.ErrInvalidInput)
	assert.ErrorContains(t, err, "value 2")

	_, _, err = run(t, "", "array")
	assert.Error(t, err)
}
