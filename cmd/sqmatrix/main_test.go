// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmatrix/config"
	"github.com/katalvlaran/sqmatrix/loader"
	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/katalvlaran/sqmatrix/session"
)

const dataset = "2 0\n1 2\n3 4\n5 6\n7 8\n"

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// runCLI invokes run with captured streams.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	var out, errOut bytes.Buffer
	err = run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRun_FileFlag(t *testing.T) {
	path := writeFile(t, "input.txt", dataset)

	stdout, _, err := runCLI(t, "0 1 0 1 1 1 9\n", "--file", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Multiplied Matrix (Matrix1 x Matrix2):\n      19      22\n      43      50\n")
	require.True(t, strings.HasSuffix(stdout, "Updated Matrix:\n       4       3\n       2       9\n"))
	require.NotContains(t, stdout, "Enter", "prompts are only written to terminals")
}

func TestRun_FileNameFromStdin(t *testing.T) {
	path := writeFile(t, "input.txt", dataset)

	stdout, _, err := runCLI(t, path+"\n0 1\n0 1\n1 1 9\n")
	require.NoError(t, err)
	require.Contains(t, stdout, "Sum of main and secondary diagonal elements (Matrix1): 10\n")
}

func TestRun_PromptsFlag(t *testing.T) {
	path := writeFile(t, "input.txt", dataset)

	stdout, _, err := runCLI(t, path+"\n0 1\n0 1\n1 1 9\n", "--prompts")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Enter input file name: \nMatrix 1:\n"))
	require.Contains(t, stdout, "Enter row index1 to swap (0 to 1): ")
	require.Contains(t, stdout, "For matrix 1\nEnter column index1 to swap (0 to 1): ")
	require.Contains(t, stdout, "Enter new value: \nUpdated Matrix:\n")
}

func TestRun_DatasetOnStdin(t *testing.T) {
	stdout, _, err := runCLI(t, dataset+"0 1 0 1 1 1 9\n", "-f", "-", "--width", "4")
	require.NoError(t, err)
	require.Contains(t, stdout, "Matrix 1:\n   1   2\n   3   4\n")
	require.True(t, strings.HasSuffix(stdout, "Updated Matrix:\n   4   3\n   2   9\n"))
}

func TestRun_ConfigAndFlagOverride(t *testing.T) {
	cfgPath := writeFile(t, "sqmatrix.yaml", "render:\n  cell_width: 3\n  precision: 2\n")
	path := writeFile(t, "input.txt", "1 1\n3.14159\n2\n")

	stdout, _, err := runCLI(t, "0 0 0 0 0 0 1", "-f", path, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Matrix 1:\n3.1\n")

	stdout, _, err = runCLI(t, "0 0 0 0 0 0 1", "-f", path, "--config", cfgPath, "--width", "6")
	require.NoError(t, err)
	require.Contains(t, stdout, "Matrix 1:\n   3.1\n")
}

func TestRun_DebugLogsAsJSON(t *testing.T) {
	path := writeFile(t, "input.txt", dataset)

	_, stderr, err := runCLI(t, "0 9 0 1 1 1 9", "-f", path, "--debug")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"input loaded"`)
	require.Contains(t, stderr, `"msg":"row swap skipped"`)
	require.Contains(t, stderr, `"dimension":2`)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  func(t *testing.T) []string
		want  error
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string { return []string{"-f", filepath.Join(t.TempDir(), "nope.txt")} },
			want: loader.ErrOpen,
		},
		{
			name: "unsupported kind",
			args: func(t *testing.T) []string { return []string{"-f", writeFile(t, "in.txt", "1 4 1 2")} },
			want: loader.ErrUnsupportedKind,
		},
		{
			name: "no file name",
			args: func(*testing.T) []string { return nil },
			want: matrix.ErrShortInput,
		},
		{
			name:  "bad answer",
			stdin: "one",
			args:  func(t *testing.T) []string { return []string{"-f", writeFile(t, "in.txt", dataset)} },
			want:  session.ErrBadAnswer,
		},
		{
			name: "bad width",
			args: func(*testing.T) []string { return []string{"--width", "0"} },
			want: config.ErrInvalidConfig,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.stdin, tc.args(t)...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	_, _, err := runCLI(t, "", "--no-such-flag")
	require.Error(t, err)

	_, _, err = runCLI(t, "", "stray")
	require.ErrorContains(t, err, "unexpected arguments")
}

func TestRun_HelpAndVersion(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	require.Contains(t, stderr, "Usage:")
	require.Contains(t, stderr, "--precision")

	stdout, _, err := runCLI(t, "", "--version")
	require.NoError(t, err)
	require.Equal(t, "sqmatrix dev\n", stdout)
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.FormatText, 0).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	newLogger(&buf, config.FormatAuto, 0).Info("hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)
}
