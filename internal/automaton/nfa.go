package automaton

import "fmt"

// NFA is a nondeterministic automaton with epsilon moves. The simulation
// cursor is part of the value, so one NFA runs one input at a time.
type NFA struct {
	alphabet  Alphabet
	states    StateSet
	moves     map[State]map[string]StateSet
	epsilon   map[State]StateSet
	start     StateSet
	accepting StateSet
	current   StateSet
}

func newNFA(alphabet Alphabet) *NFA {
	return &NFA{
		alphabet:  alphabet,
		states:    make(StateSet),
		moves:     make(map[State]map[string]StateSet),
		epsilon:   make(map[State]StateSet),
		start:     make(StateSet),
		accepting: make(StateSet),
		current:   make(StateSet),
	}
}

// NewNFA assembles an NFA from plain parts and validates it.
func NewNFA(alphabet Alphabet, states []State, transitions []Transition, start, accepting []State) (*NFA, error) {
	n := newNFA(alphabet)
	for _, s := range states {
		n.states.Add(s)
	}
	for _, t := range transitions {
		if t.Epsilon {
			n.addEpsilon(t.From, t.To)
		} else {
			n.addMove(t.From, t.Symbol, t.To)
		}
	}
	for _, s := range start {
		n.start.Add(s)
	}
	for _, s := range accepting {
		n.accepting.Add(s)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	n.Reset()
	return n, nil
}

func (n *NFA) addMove(from State, sym string, to State) {
	bySym, ok := n.moves[from]
	if !ok {
		bySym = make(map[string]StateSet)
		n.moves[from] = bySym
	}
	dst, ok := bySym[sym]
	if !ok {
		dst = make(StateSet)
		bySym[sym] = dst
	}
	dst.Add(to)
}

func (n *NFA) addEpsilon(from, to State) {
	dst, ok := n.epsilon[from]
	if !ok {
		dst = make(StateSet)
		n.epsilon[from] = dst
	}
	dst.Add(to)
}

func (n *NFA) Alphabet() Alphabet { return n.alphabet }
func (n *NFA) States() []State { return n.states.Sorted() }
func (n *NFA) Start() []State { return n.start.Sorted() }
func (n *NFA) Accepting() []State { return n.accepting.Sorted() }
func (n *NFA) Current() []State { return n.current.Sorted() }
func (n *NFA) Len() int { return len(n.states) }
func (n *NFA) IsAccepting(s State) bool { return n.accepting.Contains(s) }

// Transitions lists every edge, epsilon edges included, in a stable order.
func (n *NFA) Transitions() []Transition {
	var out []Transition
	for from, bySym := range n.moves {
		for sym, dst := range bySym {
			for to := range dst {
				out = append(out, Transition{From: from, Symbol: sym, To: to})
			}
		}
	}
	for from, dst := range n.epsilon {
		for to := range dst {
			out = append(out, Transition{From: from, Epsilon: true, To: to})
		}
	}
	sortTransitions(out)
	return out
}

// Validate checks that every referenced state is declared and every symbol
// belongs to the alphabet.
func (n *NFA) Validate() error {
	if len(n.start) == 0 {
		return fmt.Errorf("%w: no start state", ErrMalformedDescription)
	}
	for s := range n.start {
		if !n.states.Contains(s) {
			return fmt.Errorf("%w: start state %v is not declared", ErrMalformedDescription, s)
		}
	}
	for s := range n.accepting {
		if !n.states.Contains(s) {
			return fmt.Errorf("%w: accepting state %v is not declared", ErrMalformedDescription, s)
		}
	}
	for from, bySym := range n.moves {
		if !n.states.Contains(from) {
			return fmt.Errorf("%w: transition from undeclared state %v", ErrMalformedDescription, from)
		}
		for sym, dst := range bySym {
			if !n.alphabet.Contains(sym) {
				return fmt.Errorf("%w: symbol %q of %v is not in the alphabet", ErrMalformedDescription, sym, from)
			}
			for to := range dst {
				if !n.states.Contains(to) {
					return fmt.Errorf("%w: %v --%s--> undeclared state %v", ErrMalformedDescription, from, sym, to)
				}
			}
		}
	}
	for from, dst := range n.epsilon {
		if !n.states.Contains(from) {
			return fmt.Errorf("%w: epsilon move from undeclared state %v", ErrMalformedDescription, from)
		}
		for to := range dst {
			if !n.states.Contains(to) {
				return fmt.Errorf("%w: %v --ε--> undeclared state %v", ErrMalformedDescription, from, to)
			}
		}
	}
	return nil
}

// EpsilonClosure returns every state reachable from set through epsilon
// moves alone, set itself included. States without outgoing moves, or not
// known to the automaton at all, simply have no successors.
func (n *NFA) EpsilonClosure(set StateSet) StateSet {
	closure := set.Clone()
	queue := set.Sorted()
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for to := range n.epsilon[s] {
			if closure.Contains(to) {
				continue
			}
			closure.Add(to)
			queue = append(queue, to)
		}
	}
	return closure
}

// move returns the direct successors of set under sym, without closure.
func (n *NFA) move(set StateSet, sym string) StateSet {
	out := make(StateSet)
	for s := range set {
		out.AddAll(n.moves[s][sym])
	}
	return out
}

// Reset puts the cursor back on the closure of the start states.
func (n *NFA) Reset() {
	n.current = n.EpsilonClosure(n.start)
}

// Accept runs input one character per symbol. See AcceptSymbols.
func (n *NFA) Accept(input string) bool {
	return n.AcceptSymbols(Symbols(input))
}

// AcceptSymbols restarts the simulation and feeds input through it. A symbol
// outside the alphabet rejects, and so does a step that leaves no active
// state: the run stops there instead of carrying stale states forward.
func (n *NFA) AcceptSymbols(input []string) bool {
	n.Reset()
	for _, sym := range input {
		if !n.alphabet.Contains(sym) {
			n.current = make(StateSet)
			return false
		}
		next := n.move(n.current, sym)
		if len(next) == 0 {
			n.current = next
			return false
		}
		n.current = n.EpsilonClosure(next)
	}
	return n.current.Intersects(n.accepting)
}
