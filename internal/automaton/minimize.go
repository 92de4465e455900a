package automaton

// Minimize returns a new minimal DFA accepting the same language as d; d is
// left untouched.
//
// Unreachable states are dropped first. The remaining states are completed
// with an implicit dead state so that a missing transition counts as a move
// into rejection. A pair of states is distinguishable when exactly one of
// them accepts, or when some symbol leads both into a distinguishable pair;
// the second rule is applied backwards from each newly marked pair through a
// reverse transition index until nothing changes. Unmarked pairs are merged.
// States merged with the dead state disappear together with the edges into
// them.
func Minimize(d *DFA) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	order := d.reachable()
	live := NewStateSet(order...)
	states := live.Sorted()
	n := len(states)
	dead := n
	index := make(map[State]int, n)
	for i, s := range states {
		index[s] = i
	}

	k := len(d.alphabet)
	succ := make([][]int, n+1)
	accepting := make([]bool, n+1)
	for i := range succ {
		succ[i] = make([]int, k)
		for c := range succ[i] {
			succ[i][c] = dead
		}
	}
	for i, s := range states {
		accepting[i] = d.accepting.Contains(s)
		for c, sym := range d.alphabet {
			if to, ok := d.Next(s, sym); ok {
				succ[i][c] = index[to]
			}
		}
	}

	// rev[t][c] lists the states that move into t on symbol c.
	rev := make([][][]int, n+1)
	for t := range rev {
		rev[t] = make([][]int, k)
	}
	for s := 0; s <= n; s++ {
		for c := 0; c < k; c++ {
			t := succ[s][c]
			rev[t][c] = append(rev[t][c], s)
		}
	}

	marked := make([][]bool, n+1)
	for i := range marked {
		marked[i] = make([]bool, n+1)
	}
	type pair struct{ u, v int }
	var queue []pair
	mark := func(u, v int) {
		marked[u][v] = true
		marked[v][u] = true
		queue = append(queue, pair{u, v})
	}

	for u := 0; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if accepting[u] != accepting[v] {
				mark(u, v)
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for c := 0; c < k; c++ {
			for _, r := range rev[p.u][c] {
				for _, s := range rev[p.v][c] {
					if r == s || marked[r][s] {
						continue
					}
					mark(r, s)
				}
			}
		}
	}

	// Table filling leaves an equivalence relation, so each class is the set
	// of unmarked partners of its smallest member.
	class := make([]int, n+1)
	for i := range class {
		class[i] = -1
	}
	for i := 0; i <= n; i++ {
		if class[i] != -1 {
			continue
		}
		class[i] = i
		for j := i + 1; j <= n; j++ {
			if class[j] == -1 && !marked[i][j] {
				class[j] = i
			}
		}
	}

	deadClass := class[dead]
	startClass := class[index[d.start]]
	if startClass == deadClass {
		// Empty language: a lone rejecting start state.
		return newDFA(d.alphabet, d.start), nil
	}

	rep := func(i int) State { return states[class[i]] }
	out := newDFA(d.alphabet, rep(startClass))
	for i := 0; i < n; i++ {
		if class[i] != i || i == deadClass {
			continue
		}
		from := states[i]
		out.states.Add(from)
		if accepting[i] {
			out.accepting.Add(from)
		}
		for c, sym := range d.alphabet {
			t := succ[i][c]
			if class[t] == deadClass {
				continue
			}
			out.setMove(from, sym, rep(t))
		}
	}
	return out, nil
}
