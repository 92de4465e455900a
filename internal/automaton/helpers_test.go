package automaton

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCompile(t testing.TB, expr string) *NFA {
	t.Helper()
	n, err := Compile(expr)
	require.NoError(t, err, "compile %q", expr)
	return n
}

func mustDFA(t testing.TB, expr string) *DFA {
	t.Helper()
	d, err := ToDFA(mustCompile(t, expr))
	require.NoError(t, err, "determinize %q", expr)
	return d
}

func mustMinimal(t testing.TB, expr string) *DFA {
	t.Helper()
	m, err := Minimize(mustDFA(t, expr))
	require.NoError(t, err, "minimize %q", expr)
	return m
}

// words lists every string over alpha of length 0..maxLen.
func words(alpha []string, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range layer {
			for _, a := range alpha {
				next = append(next, w+a)
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// oracle translates expr into Go regexp syntax anchored on both ends.
func oracle(expr string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + strings.ReplaceAll(expr, "+", "|") + ")$")
}
