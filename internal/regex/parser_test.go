package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeInsertsConcatenation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"literal literal", "01", "0 . 1"},
		{"literal open", "0(1)", "0 . ( 1 )"},
		{"close open", "(0)(1)", "( 0 ) . ( 1 )"},
		{"star literal", "0*1", "0 * . 1"},
		{"star open", "0*(1)", "0 * . ( 1 )"},
		{"close literal", "(0)1", "( 0 ) . 1"},
		{"no concat around union", "0+1", "0 + 1"},
		{"pipe is union", "0|1", "0 + 1"},
		{"double star", "0**", "0 * *"},
		{"open after union", "0+(1)", "0 + ( 1 )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(tokens))
		})
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tokens, err := Tokenize("aé")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, Constant, tokens[0].Kind)
	assert.Equal(t, "a", tokens[0].Symbol)
	assert.Equal(t, Concatenation, tokens[1].Kind)
	assert.Equal(t, Constant, tokens[2].Kind)
	assert.Equal(t, "é", tokens[2].Symbol)
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"01", "0 1 ."},
		{"0*", "0 *"},
		{"0+1", "0 1 +"},
		{"(0+1)*", "0 1 + *"},
		{"01*", "0 1 * ."},
		{"0+10", "0 1 0 . +"},
		{"abc", "a b . c ."},
		{"a+b+c", "a b + c +"},
		{"(ab)*", "a b . *"},
		{"(0+10)*(1+11)(0+01)*", "0 1 0 . + * 1 1 1 . + . 0 0 1 . + * ."},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			postfix, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(postfix))
			for _, tok := range postfix {
				assert.NotEqual(t, OpenBracket, tok.Kind)
				assert.NotEqual(t, CloseBracket, tok.Kind)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	inputs := []string{
		"(0+1",
		"*0",
		"",
		"0+",
		"()",
		"0)",
		"(+0)",
		"0+*1",
		"((0)",
		"0|",
		"+",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		})
	}
}

func TestToPostfixUnbalancedWithoutTokenizer(t *testing.T) {
	_, err := ToPostfix([]Token{{Kind: CloseBracket}})
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = ToPostfix([]Token{{Kind: OpenBracket}, {Kind: Constant, Symbol: "a"}})
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestSymbols(t *testing.T) {
	postfix, err := Parse("(b+a)*ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, Symbols(postfix))
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{"0*", "(0+1)*", "01", "(0+10)*(1+11)(0+01)*", "*0", "(0+1", "a|b|"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, expr string) {
		postfix, err := Parse(expr)
		if err != nil {
			return
		}
		if err := checkArity(postfix); err != nil {
			t.Fatalf("Parse(%q) returned unbalanced postfix %q", expr, Format(postfix))
		}
	})
}
