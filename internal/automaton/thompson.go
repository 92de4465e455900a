package automaton

import (
	"fmt"

	"automata/internal/regex"
)

// allocator mints state ids for one Thompson build. Every fragment of the
// build draws from the same allocator, so ids never collide.
type allocator struct {
	next State
}

func (a *allocator) fresh() State {
	s := a.next
	a.next++
	return s
}

// fragment is a partial NFA with exactly one start and one accepting state.
// The accepting state never has outgoing moves while the fragment is on the
// build stack.
type fragment struct {
	states  StateSet
	moves   map[State]map[string]StateSet
	epsilon map[State]StateSet
	start   State
	accept  State
}

func newFragment() *fragment {
	return &fragment{
		states:  make(StateSet),
		moves:   make(map[State]map[string]StateSet),
		epsilon: make(map[State]StateSet),
	}
}

func (f *fragment) addMove(from State, sym string, to State) {
	bySym, ok := f.moves[from]
	if !ok {
		bySym = make(map[string]StateSet)
		f.moves[from] = bySym
	}
	dst, ok := bySym[sym]
	if !ok {
		dst = make(StateSet)
		bySym[sym] = dst
	}
	dst.Add(to)
}

func (f *fragment) addEpsilon(from, to State) {
	dst, ok := f.epsilon[from]
	if !ok {
		dst = make(StateSet)
		f.epsilon[from] = dst
	}
	dst.Add(to)
}

// absorb moves every state and edge of g into f. g is left empty and must
// not be used again.
func (f *fragment) absorb(g *fragment) {
	f.states.AddAll(g.states)
	for from, bySym := range g.moves {
		f.moves[from] = bySym
	}
	for from, dst := range g.epsilon {
		f.epsilon[from] = dst
	}
	g.states, g.moves, g.epsilon = nil, nil, nil
}

// redirect points every edge that targets old at repl instead.
func (f *fragment) redirect(old, repl State) {
	swap := func(dst StateSet) {
		if dst.Contains(old) {
			delete(dst, old)
			dst.Add(repl)
		}
	}
	for _, bySym := range f.moves {
		for _, dst := range bySym {
			swap(dst)
		}
	}
	for _, dst := range f.epsilon {
		swap(dst)
	}
}

// constant: s0 --c--> s1.
func constant(alloc *allocator, sym string) *fragment {
	f := newFragment()
	f.start, f.accept = alloc.fresh(), alloc.fresh()
	f.states.Add(f.start)
	f.states.Add(f.accept)
	f.addMove(f.start, sym, f.accept)
	return f
}

// concatenate splices b after a: edges into a's accepting state now enter
// b's start state and a's accepting state disappears.
func concatenate(a, b *fragment) *fragment {
	start, joint := a.start, a.accept
	bStart, accept := b.start, b.accept

	f := newFragment()
	f.absorb(a)
	f.absorb(b)
	f.redirect(joint, bStart)
	delete(f.states, joint)
	f.start, f.accept = start, accept
	return f
}

func union(alloc *allocator, a, b *fragment) *fragment {
	f := newFragment()
	f.start = alloc.fresh()
	aStart, aAccept := a.start, a.accept
	bStart, bAccept := b.start, b.accept
	f.absorb(a)
	f.absorb(b)
	f.accept = alloc.fresh()
	f.states.Add(f.start)
	f.states.Add(f.accept)

	f.addEpsilon(f.start, aStart)
	f.addEpsilon(f.start, bStart)
	f.addEpsilon(aAccept, f.accept)
	f.addEpsilon(bAccept, f.accept)
	return f
}

func star(alloc *allocator, a *fragment) *fragment {
	f := newFragment()
	f.start = alloc.fresh()
	inner, innerAccept := a.start, a.accept
	f.absorb(a)
	f.accept = alloc.fresh()
	f.states.Add(f.start)
	f.states.Add(f.accept)

	f.addEpsilon(f.start, inner)
	f.addEpsilon(f.start, f.accept)
	f.addEpsilon(innerAccept, inner)
	f.addEpsilon(innerAccept, f.accept)
	return f
}

// Build runs Thompson construction over a postfix token sequence. The
// alphabet of the result is the set of symbols that label its edges.
func Build(postfix []regex.Token) (*NFA, error) {
	alloc := &allocator{}
	var stack []*fragment

	pop := func(tok regex.Token) (*fragment, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: %q at offset %d is missing an operand",
				regex.ErrMalformedExpression, tok.String(), tok.Pos)
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case regex.Constant:
			stack = append(stack, constant(alloc, tok.Symbol))
		case regex.Concatenation, regex.Union:
			second, err := pop(tok)
			if err != nil {
				return nil, err
			}
			first, err := pop(tok)
			if err != nil {
				return nil, err
			}
			if tok.Kind == regex.Concatenation {
				stack = append(stack, concatenate(first, second))
			} else {
				stack = append(stack, union(alloc, first, second))
			}
		case regex.KleeneStar:
			inner, err := pop(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, star(alloc, inner))
		default:
			return nil, fmt.Errorf("%w: unexpected %q in postfix sequence",
				regex.ErrMalformedExpression, tok.String())
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments left after construction",
			regex.ErrMalformedExpression, len(stack))
	}
	f := stack[0]

	var symbols []string
	for _, bySym := range f.moves {
		for sym := range bySym {
			symbols = append(symbols, sym)
		}
	}

	n := newNFA(NewAlphabet(symbols...))
	n.states = f.states
	n.moves = f.moves
	n.epsilon = f.epsilon
	n.start.Add(f.start)
	n.accepting.Add(f.accept)
	n.Reset()
	return n, nil
}

// Compile parses expr and builds its Thompson NFA.
func Compile(expr string) (*NFA, error) {
	postfix, err := regex.Parse(expr)
	if err != nil {
		return nil, err
	}
	return Build(postfix)
}
