package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontaoski/monkey/config"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.mk")
	require.NoError(t, ioutil.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunFile(t *testing.T) {
	path := writeSource(t, `
let fib = fn(n) {
	if (n < 2) { return n; }
	fib(n - 1) + fib(n - 2)
};
fib(10);
`)

	var out bytes.Buffer
	require.NoError(t, runFile(path, config.Default(), &out))
	require.Equal(t, "55\n", out.String())
}

func TestRunFileErrors(t *testing.T) {
	var out bytes.Buffer

	err := runFile(writeSource(t, "let x 5;"), config.Default(), &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected next token to be ASSIGN")
	require.Contains(t, err.Error(), "main.mk:1:7")

	err = runFile(writeSource(t, "1 + true"), config.Default(), &out)
	require.EqualError(t, err, "type mismatch: integer + boolean")

	err = runFile(filepath.Join(t.TempDir(), "missing.mk"), config.Default(), &out)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestPrintTokens(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTokens(writeSource(t, "let a = 1;"), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	require.True(t, strings.HasPrefix(lines[0], `LET "let"`), lines[0])
	require.True(t, strings.HasPrefix(lines[5], `EOF ""`), lines[5])
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, initConfig(path))

	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), s)

	require.Error(t, initConfig(path), "init must not overwrite an existing file")
}

func TestRepl(t *testing.T) {
	settings := config.Default()
	settings.Prompt = "> "
	settings.Color = false

	in := strings.NewReader(strings.Join([]string{
		"let a = 5;",
		"a * 2",
		"",
		"b",
		"let add = fn(x, y) { x + y };",
		"add(a, 1)",
		"let x 5;",
		"exit",
		"a",
	}, "\n"))

	var out bytes.Buffer
	require.NoError(t, repl(in, &out, settings))

	got := out.String()
	require.Contains(t, got, "> null\n")
	require.Contains(t, got, "> 10\n")
	require.Contains(t, got, "> Error: identifier not found: b")
	require.Contains(t, got, "> 6\n")
	require.Contains(t, got, "> Error: expected next token to be ASSIGN, got INT instead")
	require.True(t, strings.HasSuffix(got, "> "), "nothing is evaluated after exit: %q", got)
}

func TestReplDropsBindingsOfFailedLine(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "new binding",
			lines: []string{"let x = 1; y", "x"},
			want:  []string{"Error: identifier not found: y", "Error: identifier not found: x"},
		},
		{
			name:  "rebinding",
			lines: []string{"let a = 1;", "let a = 2; a + true", "a"},
			want:  []string{"Error: type mismatch: integer + boolean", "> 1\n"},
		},
		{
			name:  "closure sees restored scope",
			lines: []string{"let a = 1;", "let get = fn() { a };", "let a = 5; 1 / 0", "get()"},
			want:  []string{"Error: division by zero", "> 1\n"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			settings := config.Default()
			settings.Prompt = "> "
			settings.Color = false

			var out bytes.Buffer
			require.NoError(t, repl(strings.NewReader(strings.Join(c.lines, "\n")), &out, settings))
			for _, want := range c.want {
				require.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunFileNestingLimit(t *testing.T) {
	settings := config.Default()
	settings.MaxDepth = 50

	var out bytes.Buffer
	err := runFile(writeSource(t, strings.Repeat("(", 100)+"1"+strings.Repeat(")", 100)), settings, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expression nesting exceeds depth 50")
	require.Empty(t, out.String())
}

func TestReplEndOfInput(t *testing.T) {
	settings := config.Default()
	settings.Color = false

	var out bytes.Buffer
	require.NoError(t, repl(strings.NewReader("1 + 1"), &out, settings))
	require.Equal(t, ">> 2\n>> \n", out.String())
}
