package regex

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// literal matches one UTF-8 encoded character. NUL is not a valid symbol.
const literal = "[\x01-\x7f]" +
	"|[\xc2-\xdf][\x80-\xbf]" +
	"|[\xe0-\xef][\x80-\xbf][\x80-\xbf]" +
	"|[\xf0-\xf4][\x80-\xbf][\x80-\xbf][\x80-\xbf]"

var (
	lexOnce  sync.Once
	lexRules *lexmachine.Lexer
	lexErr   error
)

// symbolLexer compiles the operator and literal rules once. Operators are
// added first so they win over the literal rule on equal match length.
func symbolLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[(]`), tokAction(OpenBracket))
		l.Add([]byte(`[)]`), tokAction(CloseBracket))
		l.Add([]byte(`[*]`), tokAction(KleeneStar))
		l.Add([]byte(`[+|]`), tokAction(Union))
		l.Add([]byte(literal), tokAction(Constant))
		if err := l.Compile(); err != nil {
			lexErr = err
			return
		}
		lexRules = l
	})
	return lexRules, lexErr
}

func tokAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tok := Token{Kind: kind, Pos: m.TC}
		if kind == Constant {
			tok.Symbol = string(m.Bytes)
		}
		return tok, nil
	}
}

// Tokenize splits expr into tokens and inserts a Concatenation between every
// pair of adjacent operands. The decision only looks at the previously
// emitted token and the next raw token: a concatenation goes in whenever the
// previous token closes an operand (constant, `)` or `*`) and the next one
// opens an operand (constant or `(`).
//
// Operators that have nothing to apply to are rejected here: `*`, `+` and `)`
// must follow a closed operand, and the expression must end on one.
func Tokenize(expr string) ([]Token, error) {
	l, err := symbolLexer()
	if err != nil {
		return nil, fmt.Errorf("compile tokenizer: %w", err)
	}
	scanner, err := l.Scanner([]byte(expr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
	}

	var out []Token
	last := func() (Token, bool) {
		if len(out) == 0 {
			return Token{}, false
		}
		return out[len(out)-1], true
	}

	for raw, err, eof := scanner.Next(); !eof; raw, err, eof = scanner.Next() {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
		}
		tok := raw.(Token)
		prev, ok := last()

		switch tok.Kind {
		case KleeneStar, Union, CloseBracket:
			if !ok || !prev.endsOperand() {
				return nil, fmt.Errorf("%w: %q at offset %d has no left operand",
					ErrMalformedExpression, tok.String(), tok.Pos)
			}
		default:
			if ok && prev.endsOperand() && tok.beginsOperand() {
				out = append(out, Token{Kind: Concatenation, Pos: tok.Pos})
			}
		}
		out = append(out, tok)
	}

	prev, ok := last()
	if !ok {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	if !prev.endsOperand() {
		return nil, fmt.Errorf("%w: expression ends with %q", ErrMalformedExpression, prev.String())
	}
	return out, nil
}
