// Package regex turns a regular expression over a finite alphabet into a
// postfix token sequence. Only union (`+` or `|`), concatenation (implicit)
// and Kleene star are recognised; every other character is a literal symbol.
package regex

import (
	"errors"
	"strings"
)

// ErrMalformedExpression reports unbalanced brackets, an empty expression or
// an operator without operands.
var ErrMalformedExpression = errors.New("malformed expression")

type Kind int

const (
	OpenBracket Kind = iota
	CloseBracket
	Union
	Concatenation
	KleeneStar
	Constant
)

func (k Kind) String() string {
	switch k {
	case OpenBracket:
		return "("
	case CloseBracket:
		return ")"
	case Union:
		return "+"
	case Concatenation:
		return "."
	case KleeneStar:
		return "*"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// Token is one element of a tokenized or postfix expression. Symbol is set
// only for Constant tokens. Pos is the byte offset in the source expression;
// synthetic concatenations carry the offset of the token that follows them.
type Token struct {
	Kind   Kind
	Symbol string
	Pos    int
}

func (t Token) String() string {
	if t.Kind == Constant {
		return t.Symbol
	}
	return t.Kind.String()
}

// endsOperand reports whether an expression may legally stop after t.
func (t Token) endsOperand() bool {
	return t.Kind == Constant || t.Kind == CloseBracket || t.Kind == KleeneStar
}

// beginsOperand reports whether t starts a new operand.
func (t Token) beginsOperand() bool {
	return t.Kind == Constant || t.Kind == OpenBracket
}

// Format renders tokens separated by single spaces, e.g. "0 1 . *".
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Symbols returns the distinct literal symbols of tokens in first-seen order.
func Symbols(tokens []Token) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tokens {
		if t.Kind != Constant {
			continue
		}
		if _, ok := seen[t.Symbol]; ok {
			continue
		}
		seen[t.Symbol] = struct{}{}
		out = append(out, t.Symbol)
	}
	return out
}
