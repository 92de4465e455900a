package automaton

import "fmt"

// DFA is a deterministic automaton. The transition function may be partial:
// a missing (state, symbol) pair rejects.
type DFA struct {
	alphabet  Alphabet
	states    StateSet
	moves     map[State]map[string]State
	start     State
	accepting StateSet
	current   State
}

func newDFA(alphabet Alphabet, start State) *DFA {
	return &DFA{
		alphabet:  alphabet,
		states:    NewStateSet(start),
		moves:     make(map[State]map[string]State),
		start:     start,
		accepting: make(StateSet),
		current:   start,
	}
}

// NewDFA assembles a DFA from plain parts and validates it. Epsilon edges and
// two different targets for one (state, symbol) pair are rejected.
func NewDFA(alphabet Alphabet, states []State, transitions []Transition, start State, accepting []State) (*DFA, error) {
	d := newDFA(alphabet, start)
	d.states = NewStateSet(states...)
	for _, t := range transitions {
		if t.Epsilon {
			return nil, fmt.Errorf("%w: epsilon move from %v in a DFA", ErrMalformedDescription, t.From)
		}
		if prev, ok := d.Next(t.From, t.Symbol); ok && prev != t.To {
			return nil, fmt.Errorf("%w: %v has two targets on %q", ErrMalformedDescription, t.From, t.Symbol)
		}
		d.setMove(t.From, t.Symbol, t.To)
	}
	for _, s := range accepting {
		d.accepting.Add(s)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DFA) setMove(from State, sym string, to State) {
	bySym, ok := d.moves[from]
	if !ok {
		bySym = make(map[string]State)
		d.moves[from] = bySym
	}
	bySym[sym] = to
}

func (d *DFA) Alphabet() Alphabet { return d.alphabet }
func (d *DFA) States() []State { return d.states.Sorted() }
func (d *DFA) Start() State { return d.start }
func (d *DFA) Accepting() []State { return d.accepting.Sorted() }
func (d *DFA) Current() State { return d.current }
func (d *DFA) Len() int { return len(d.states) }
func (d *DFA) IsAccepting(s State) bool { return d.accepting.Contains(s) }

// Next returns the target of s on sym, if there is one.
func (d *DFA) Next(s State, sym string) (State, bool) {
	to, ok := d.moves[s][sym]
	return to, ok
}

func (d *DFA) Transitions() []Transition {
	var out []Transition
	for from, bySym := range d.moves {
		for sym, to := range bySym {
			out = append(out, Transition{From: from, Symbol: sym, To: to})
		}
	}
	sortTransitions(out)
	return out
}

func (d *DFA) Validate() error {
	if !d.states.Contains(d.start) {
		return fmt.Errorf("%w: start state %v is not declared", ErrMalformedDescription, d.start)
	}
	for s := range d.accepting {
		if !d.states.Contains(s) {
			return fmt.Errorf("%w: accepting state %v is not declared", ErrMalformedDescription, s)
		}
	}
	for from, bySym := range d.moves {
		if !d.states.Contains(from) {
			return fmt.Errorf("%w: transition from undeclared state %v", ErrMalformedDescription, from)
		}
		for sym, to := range bySym {
			if !d.alphabet.Contains(sym) {
				return fmt.Errorf("%w: symbol %q of %v is not in the alphabet", ErrMalformedDescription, sym, from)
			}
			if !d.states.Contains(to) {
				return fmt.Errorf("%w: %v --%s--> undeclared state %v", ErrMalformedDescription, from, sym, to)
			}
		}
	}
	return nil
}

func (d *DFA) Reset() { d.current = d.start }

func (d *DFA) Accept(input string) bool {
	return d.AcceptSymbols(Symbols(input))
}

// AcceptSymbols restarts the cursor and follows input. Unknown symbols and
// missing transitions reject.
func (d *DFA) AcceptSymbols(input []string) bool {
	d.Reset()
	for _, sym := range input {
		if !d.alphabet.Contains(sym) {
			return false
		}
		to, ok := d.Next(d.current, sym)
		if !ok {
			return false
		}
		d.current = to
	}
	return d.accepting.Contains(d.current)
}

// reachable lists the states reachable from start in breadth-first order.
func (d *DFA) reachable() []State {
	seen := NewStateSet(d.start)
	order := []State{d.start}
	for i := 0; i < len(order); i++ {
		for _, sym := range d.alphabet {
			to, ok := d.Next(order[i], sym)
			if !ok || seen.Contains(to) {
				continue
			}
			seen.Add(to)
			order = append(order, to)
		}
	}
	return order
}

// ToDFA determinizes n by subset construction. Each DFA state stands for the
// epsilon-closed set of NFA states it was reached with; sets are deduplicated
// by their canonical key. The start state is 0 and the rest are numbered in
// discovery order. An empty successor set yields no transition rather than a
// dead state.
func ToDFA(n *NFA) (*DFA, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	initial := n.EpsilonClosure(n.start)
	d := newDFA(n.alphabet, 0)
	if initial.Intersects(n.accepting) {
		d.accepting.Add(0)
	}
	ids := map[string]State{initial.Key(): 0}
	sets := []StateSet{initial}

	for i := 0; i < len(sets); i++ {
		cur := sets[i]
		for _, sym := range n.alphabet {
			next := n.move(cur, sym)
			if len(next) == 0 {
				continue
			}
			next = n.EpsilonClosure(next)
			key := next.Key()
			id, ok := ids[key]
			if !ok {
				id = State(len(sets))
				ids[key] = id
				sets = append(sets, next)
				d.states.Add(id)
				if next.Intersects(n.accepting) {
					d.accepting.Add(id)
				}
			}
			d.setMove(State(i), sym, id)
		}
	}
	return d, nil
}
