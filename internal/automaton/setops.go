package automaton

// Complete returns a copy of d whose transition function is total over the
// alphabet. Missing moves go to a new rejecting sink that loops on every
// symbol. A DFA that is already total is copied without a sink.
func Complete(d *DFA) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := newDFA(d.alphabet, d.start)
	out.states = d.states.Clone()
	out.accepting = d.accepting.Clone()

	states := d.states.Sorted()
	sink := states[len(states)-1] + 1
	needSink := false
	for _, s := range states {
		for _, sym := range d.alphabet {
			if to, ok := d.Next(s, sym); ok {
				out.setMove(s, sym, to)
				continue
			}
			out.setMove(s, sym, sink)
			needSink = true
		}
	}
	if needSink {
		out.states.Add(sink)
		for _, sym := range d.alphabet {
			out.setMove(sink, sym, sink)
		}
	}
	return out, nil
}

// Complement accepts exactly the strings over d's alphabet that d rejects.
func Complement(d *DFA) (*DFA, error) {
	total, err := Complete(d)
	if err != nil {
		return nil, err
	}
	flipped := make(StateSet)
	for s := range total.states {
		if !total.accepting.Contains(s) {
			flipped.Add(s)
		}
	}
	total.accepting = flipped
	return total, nil
}

// Product runs a and b side by side over the union of their alphabets and
// accepts where op holds for the two acceptance bits. A side without a move
// falls into an implicit dead state that rejects forever.
func Product(a, b *DFA, op func(bool, bool) bool) (*DFA, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	const dead State = -1
	type pair struct{ i, j State }
	step := func(d *DFA, s State, sym string) State {
		if s == dead {
			return dead
		}
		if to, ok := d.Next(s, sym); ok {
			return to
		}
		return dead
	}
	accepts := func(d *DFA, s State) bool { return s != dead && d.accepting.Contains(s) }
	keepDead := op(false, false)

	alpha := a.alphabet.Union(b.alphabet)
	startPair := pair{a.start, b.start}
	out := newDFA(alpha, 0)
	if op(accepts(a, a.start), accepts(b, b.start)) {
		out.accepting.Add(0)
	}
	ids := map[pair]State{startPair: 0}
	queue := []pair{startPair}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := ids[p]
		for _, sym := range alpha {
			np := pair{step(a, p.i, sym), step(b, p.j, sym)}
			if np.i == dead && np.j == dead && !keepDead {
				continue
			}
			id, exists := ids[np]
			if !exists {
				id = State(len(ids))
				ids[np] = id
				out.states.Add(id)
				if op(accepts(a, np.i), accepts(b, np.j)) {
					out.accepting.Add(id)
				}
				queue = append(queue, np)
			}
			out.setMove(cur, sym, id)
		}
	}
	return out, nil
}

func Intersect(a, b *DFA) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

func Union(a, b *DFA) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

func Difference(a, b *DFA) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x && !y })
}

// Equivalent reports whether a and b accept the same language.
func Equivalent(a, b *DFA) (bool, error) {
	diff, err := Product(a, b, func(x, y bool) bool { return x != y })
	if err != nil {
		return false, err
	}
	return len(diff.accepting) == 0, nil
}

// Reverse accepts the mirror image of every string d accepts. The reversed
// edges form an NFA that starts in all of d's accepting states; it is then
// determinized.
func Reverse(d *DFA) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(d.accepting) == 0 {
		return newDFA(d.alphabet, 0), nil
	}

	n := newNFA(d.alphabet)
	n.states = d.states.Clone()
	for from, bySym := range d.moves {
		for sym, to := range bySym {
			n.addMove(to, sym, from)
		}
	}
	n.start = d.accepting.Clone()
	n.accepting.Add(d.start)
	return ToDFA(n)
}
