package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAcceptRegex(t *testing.T) {
	for _, via := range []string{"nfa", "dfa", "min"} {
		t.Run(via, func(t *testing.T) {
			out, _, err := execute(t, "accept", "--regex", "(0+1)*01", "--via", via, "101", "110", "01")
			require.NoError(t, err)
			assert.Equal(t, "101: true\n110: false\n01: true\n", out)
		})
	}
}

func TestAcceptBadInvocations(t *testing.T) {
	_, _, err := execute(t, "accept", "x")
	assert.Error(t, err)

	_, _, err = execute(t, "accept", "--regex", "(0", "x")
	assert.Error(t, err)

	_, _, err = execute(t, "accept", "--regex", "0", "--via", "fast", "0")
	assert.Error(t, err)
}

func TestCompileConvertMinimize(t *testing.T) {
	nfaText, _, err := execute(t, "compile", "(0+1)*01")
	require.NoError(t, err)
	nfaFile := writeFile(t, "nfa.txt", nfaText)

	dfaText, _, err := execute(t, "convert", nfaFile)
	require.NoError(t, err)
	direct, _, err := execute(t, "compile", "--dfa", "(0+1)*01")
	require.NoError(t, err)
	assert.Equal(t, direct, dfaText)

	dfaFile := writeFile(t, "dfa.txt", dfaText)
	minText, _, err := execute(t, "minimize", dfaFile)
	require.NoError(t, err)
	assert.Equal(t, "3\n", minText[:2])

	minFile := writeFile(t, "min.txt", minText)
	out, _, err := execute(t, "accept", "--dfa", minFile, "001", "010")
	require.NoError(t, err)
	assert.Equal(t, "001: true\n010: false\n", out)

	out, _, err = execute(t, "accept", "--nfa", nfaFile, "--via", "min", "001", "010")
	require.NoError(t, err)
	assert.Equal(t, "001: true\n010: false\n", out)
}

func TestAcceptDFARejectsNFAStage(t *testing.T) {
	path := writeFile(t, "dfa.txt", "1\n{a}\nQ0={a:[Q0]}\n=Q0\n{Q0}\n")
	_, _, err := execute(t, "accept", "--dfa", path, "--via", "nfa", "aa")
	assert.Error(t, err)
}

func TestMalformedDescriptionFile(t *testing.T) {
	path := writeFile(t, "bad.txt", "2\n{a}\nQ0={}\n=Q0\n{}\n")
	_, _, err := execute(t, "convert", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestEquivalent(t *testing.T) {
	out, _, err := execute(t, "equivalent", "(0*1*)*", "(0+1)*")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute(t, "equivalent", "0*", "(0+1)*")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "generate", "--regex", "(ab)*", "--name", "Pairs", "--package", "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "package gen")
	assert.Contains(t, out, "func PairsMatchString(input string) bool")

	path := filepath.Join(t.TempDir(), "pairs.go")
	_, _, err = execute(t, "generate", "--regex", "(ab)*", "-o", path)
	require.NoError(t, err)
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package matcher")
}

func TestVerboseLogsStages(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "accept", "--regex", "0*", "0")
	require.NoError(t, err)
	for _, msg := range []string{"parsed", "built nfa", "determinized", "minimized"} {
		assert.Contains(t, stderr, msg)
	}

	t.Setenv("AUTOMATA_VERBOSE", "true")
	_, stderr, err = execute(t, "compile", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "built nfa")
}

func TestMinimizeFromEnvironment(t *testing.T) {
	t.Setenv("AUTOMATA_MINIMIZE", "1")
	out, _, err := execute(t, "compile", "(0+1)*01")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out[:2])
}
