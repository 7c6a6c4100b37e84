package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command and returns its standard output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errw bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errw)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestArgs(t *testing.T) {
	out, err := execute(t, "", "1+2", "2^3^2", "5/0", "  ", "(())", "(1")
	require.NoError(t, err)
	assert.Equal(t, "Result: 3\n"+
		"Result: 64\n"+
		"Error: division by zero: 5/0\n"+
		"Error: 1: mismatched parentheses: ( with no close parenthesis\n", out)
}

func TestREPL(t *testing.T) {
	out, err := execute(t, "1+2\n\n3*-2\n--5\n")
	require.NoError(t, err)
	assert.Equal(t, "Expression: Result: 3\n"+
		"Expression: "+
		"Expression: Result: -6\n"+
		"Expression: Error: 2: repeated negative sign\n"+
		"Expression: \n", out)
}

func TestREPLLongLine(t *testing.T) {
	long := "1" + strings.Repeat(" + 1", 50000)
	out, err := execute(t, "2 2\r\n"+long+"\n1/4", "-q")
	require.NoError(t, err)
	assert.Equal(t, "Error: 3: unexpected number 2, expected an operator\nResult: 50001\nResult: 0.25\n", out)
}

func TestREPLQuiet(t *testing.T) {
	out, err := execute(t, "1.5 + 2.25\n3.14000\n1/3\n", "-q")
	require.NoError(t, err)
	assert.Equal(t, "Result: 3.75\nResult: 3.14\nResult: 0.333333\n", out)
}

func TestFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"rpn", []string{"--rpn", "(1+2)*3"}, "RPN: 1 2 + 3 *\nResult: 9\n"},
		{"right-assoc", []string{"--right-assoc", "^", "2^3^2"}, "Result: 512\n"},
		{"decimals", []string{"--decimals", "2", "2/3"}, "Result: 0.67\n"},
		{"shortest", []string{"--decimals=-1", "1/3"}, "Result: 0.3333333333333333\n"},
		{"infinity", []string{"10^400", "0-10^400"}, "Result: Infinity\nResult: -Infinity\n"},
		{"leading-minus", []string{"--", "-5+3"}, "Result: -2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, "", c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "rpncalc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("prompt: \"> \"\nright_assoc: \"^\"\ndecimals: 1\n"), 0o644))

	out, err := execute(t, "2^3^2\n2/3\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "> Result: 512\n> Result: 0.7\n> \n", out)

	// Flags override the file.
	out, err = execute(t, "", "--config", cfg, "--decimals", "3", "2/3")
	require.NoError(t, err)
	assert.Equal(t, "Result: 0.667\n", out)
}

func TestInputFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(in, []byte("1+1\n2 2\n"), 0o644))

	out, err := execute(t, "", "--in", in, "4*4")
	require.NoError(t, err)
	assert.Equal(t, "Result: 2\nError: 3: unexpected number 2, expected an operator\nResult: 16\n", out)

	_, err = execute(t, "", "--in", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "", "--right-assoc", "%", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "right_assoc")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rpncalc version "+Version+"\n", out)
}
