package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	d := mustDFA(t, "01")
	total, err := Complete(d)
	require.NoError(t, err)
	assert.Equal(t, d.Len()+1, total.Len())
	for _, s := range total.States() {
		for _, sym := range total.Alphabet() {
			_, ok := total.Next(s, sym)
			assert.True(t, ok, "%v has no move on %q", s, sym)
		}
	}

	already, err := Complete(mustMinimal(t, "(0+1)*"))
	require.NoError(t, err)
	assert.Equal(t, 1, already.Len())
}

func TestComplement(t *testing.T) {
	c, err := Complement(mustDFA(t, "01"))
	require.NoError(t, err)
	for _, w := range []string{"", "0", "10", "011", "1111"} {
		assert.True(t, c.Accept(w), "complement should accept %q", w)
	}
	assert.False(t, c.Accept("01"))
}

func TestProductOperations(t *testing.T) {
	endsWith0 := mustDFA(t, "(0+1)*0")
	startsWith0 := mustDFA(t, "0(0+1)*")

	inter, err := Intersect(endsWith0, startsWith0)
	require.NoError(t, err)
	assert.True(t, inter.Accept("0"))
	assert.True(t, inter.Accept("010"))
	assert.False(t, inter.Accept("01"))
	assert.False(t, inter.Accept("10"))

	uni, err := Union(mustDFA(t, "0"), mustDFA(t, "1"))
	require.NoError(t, err)
	assert.True(t, uni.Accept("0"))
	assert.True(t, uni.Accept("1"))
	assert.False(t, uni.Accept("01"))

	diff, err := Difference(mustDFA(t, "(0+1)*"), mustDFA(t, "0*"))
	require.NoError(t, err)
	assert.True(t, diff.Accept("1"))
	assert.True(t, diff.Accept("001"))
	assert.False(t, diff.Accept("00"))
	assert.False(t, diff.Accept(""))
}

func TestProductMixedAlphabets(t *testing.T) {
	inter, err := Intersect(mustDFA(t, "a*"), mustDFA(t, "(a+b)*"))
	require.NoError(t, err)
	assert.Equal(t, Alphabet{"a", "b"}, inter.Alphabet())
	assert.True(t, inter.Accept("aa"))
	assert.False(t, inter.Accept("ab"))
}

func TestEquivalent(t *testing.T) {
	same, err := Equivalent(mustDFA(t, "(0+1)*"), mustDFA(t, "(0*1*)*"))
	require.NoError(t, err)
	assert.True(t, same)

	same, err = Equivalent(mustDFA(t, "0*"), mustDFA(t, "00*"))
	require.NoError(t, err)
	assert.False(t, same)
}

func TestReverse(t *testing.T) {
	r, err := Reverse(mustDFA(t, "01*"))
	require.NoError(t, err)
	assert.True(t, r.Accept("0"))
	assert.True(t, r.Accept("110"))
	assert.False(t, r.Accept("01"))

	empty, err := NewDFA(NewAlphabet("a"), []State{0}, nil, 0, nil)
	require.NoError(t, err)
	r, err = Reverse(empty)
	require.NoError(t, err)
	assert.False(t, r.Accept(""))
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	d := mustDFA(t, "(0+10)*(1+11)(0+01)*")
	r, err := Reverse(d)
	require.NoError(t, err)
	rr, err := Reverse(r)
	require.NoError(t, err)

	same, err := Equivalent(d, rr)
	require.NoError(t, err)
	assert.True(t, same)
}
