package regex

import "fmt"

func precedence(k Kind) int {
	switch k {
	case Union:
		return 1
	case Concatenation:
		return 2
	default:
		return 0
	}
}

// ToPostfix reorders tokens with the shunting-yard algorithm. Concatenation
// binds tighter than union and both associate to the left; Kleene star is a
// postfix operator and goes straight to the output. The result contains no
// brackets.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case Constant, KleeneStar:
			out = append(out, tok)
		case OpenBracket:
			ops = append(ops, tok)
		case CloseBracket:
			for {
				if len(ops) == 0 {
					return nil, fmt.Errorf("%w: unmatched ')' at offset %d", ErrMalformedExpression, tok.Pos)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == OpenBracket {
					break
				}
				out = append(out, top)
			}
		case Union, Concatenation:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == OpenBracket || precedence(top.Kind) < precedence(tok.Kind) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformedExpression, tok.Kind)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == OpenBracket {
			return nil, fmt.Errorf("%w: unclosed '(' at offset %d", ErrMalformedExpression, top.Pos)
		}
		out = append(out, top)
	}
	return out, nil
}

// Parse tokenizes expr and converts it to postfix order. The postfix
// sequence is checked to reduce to exactly one operand.
func Parse(expr string) ([]Token, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	if err := checkArity(postfix); err != nil {
		return nil, err
	}
	return postfix, nil
}

func checkArity(postfix []Token) error {
	depth := 0
	for _, tok := range postfix {
		switch tok.Kind {
		case Constant:
			depth++
		case KleeneStar:
			if depth < 1 {
				return fmt.Errorf("%w: '*' at offset %d has no operand", ErrMalformedExpression, tok.Pos)
			}
		case Union, Concatenation:
			if depth < 2 {
				return fmt.Errorf("%w: %q at offset %d needs two operands", ErrMalformedExpression, tok.String(), tok.Pos)
			}
			depth--
		}
	}
	if depth != 1 {
		return fmt.Errorf("%w: %d operands left after parsing", ErrMalformedExpression, depth)
	}
	return nil
}
