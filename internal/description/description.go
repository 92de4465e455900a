// Package description reads and writes the plain text automaton format: the
// state count, the alphabet, one line of transitions per state, the start
// state and the accepting states. The symbol "e" stands for epsilon and is
// only allowed in NFA descriptions.
package description

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"automata/internal/automaton"
)

// EpsilonSymbol is the reserved spelling of an epsilon move in the format.
const EpsilonSymbol = "e"

// Description is a parsed automaton description. It says nothing about
// whether it describes an NFA or a DFA until NFA or DFA is called.
type Description struct {
	Alphabet  []string
	States    []StateLine
	Start     automaton.State
	Accepting []automaton.State
}

// StateLine holds the outgoing moves of one state in source order.
type StateLine struct {
	State automaton.State
	Moves []Move
}

// Move is one "symbol:[targets]" entry. Epsilon moves leave Symbol empty.
type Move struct {
	Symbol  string
	Epsilon bool
	Targets []automaton.State
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", automaton.ErrMalformedDescription, fmt.Sprintf(format, args...))
}

func Parse(r io.Reader) (*Description, error) {
	doc, err := parser.Parse("description", r)
	if err != nil {
		return nil, malformed("%v", err)
	}
	return fromDocument(doc)
}

func ParseString(s string) (*Description, error) {
	doc, err := parser.ParseString("description", s)
	if err != nil {
		return nil, malformed("%v", err)
	}
	return fromDocument(doc)
}

// Load reads a description from a file.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func stateID(name string) (automaton.State, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "Q"))
	if err != nil {
		return 0, malformed("bad state name %q", name)
	}
	return automaton.State(n), nil
}

func stateIDs(names []string) ([]automaton.State, error) {
	out := make([]automaton.State, 0, len(names))
	for _, name := range names {
		id, err := stateID(name)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func fromDocument(doc *document) (*Description, error) {
	if doc.Count != len(doc.States) {
		return nil, malformed("state count is %d but %d states are listed", doc.Count, len(doc.States))
	}

	d := &Description{Alphabet: doc.Alphabet}
	seen := make(map[automaton.State]bool, len(doc.States))
	for _, line := range doc.States {
		id, err := stateID(line.Name)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, malformed("%s: state %v listed twice", line.Pos, id)
		}
		seen[id] = true

		sl := StateLine{State: id}
		for _, tr := range line.Transitions {
			targets, err := stateIDs(tr.Targets)
			if err != nil {
				return nil, err
			}
			mv := Move{Targets: targets}
			if tr.Symbol == EpsilonSymbol {
				mv.Epsilon = true
			} else {
				mv.Symbol = tr.Symbol
			}
			sl.Moves = append(sl.Moves, mv)
		}
		d.States = append(d.States, sl)
	}

	start, err := stateID(doc.Start)
	if err != nil {
		return nil, err
	}
	d.Start = start
	if d.Accepting, err = stateIDs(doc.Accepting); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Description) stateList() []automaton.State {
	out := make([]automaton.State, len(d.States))
	for i, sl := range d.States {
		out[i] = sl.State
	}
	return out
}

// NFA builds the described NFA. An empty target list, as in "a:[]", is a
// loop back to the state itself.
func (d *Description) NFA() (*automaton.NFA, error) {
	var symbols []string
	for _, s := range d.Alphabet {
		if s != EpsilonSymbol {
			symbols = append(symbols, s)
		}
	}

	var transitions []automaton.Transition
	for _, sl := range d.States {
		for _, mv := range sl.Moves {
			targets := mv.Targets
			if len(targets) == 0 {
				targets = []automaton.State{sl.State}
			}
			for _, to := range targets {
				transitions = append(transitions, automaton.Transition{
					From: sl.State, Symbol: mv.Symbol, Epsilon: mv.Epsilon, To: to,
				})
			}
		}
	}
	return automaton.NewNFA(automaton.NewAlphabet(symbols...), d.stateList(), transitions,
		[]automaton.State{d.Start}, d.Accepting)
}

// DFA builds the described DFA. Every move needs exactly one target and
// epsilon is not allowed.
func (d *Description) DFA() (*automaton.DFA, error) {
	for _, s := range d.Alphabet {
		if s == EpsilonSymbol {
			return nil, malformed("epsilon symbol %q in a DFA alphabet", EpsilonSymbol)
		}
	}

	var transitions []automaton.Transition
	for _, sl := range d.States {
		for _, mv := range sl.Moves {
			if mv.Epsilon {
				return nil, malformed("epsilon move from %v in a DFA", sl.State)
			}
			if len(mv.Targets) != 1 {
				return nil, malformed("%v has %d targets on %q, a DFA needs exactly one",
					sl.State, len(mv.Targets), mv.Symbol)
			}
			transitions = append(transitions, automaton.Transition{
				From: sl.State, Symbol: mv.Symbol, To: mv.Targets[0],
			})
		}
	}
	return automaton.NewDFA(automaton.NewAlphabet(d.Alphabet...), d.stateList(), transitions,
		d.Start, d.Accepting)
}

var (
	writableSymbol = regexp.MustCompile(`^[^\s{}\[\],;:=]+$`)
	stateLike      = regexp.MustCompile(`^Q[0-9]+$`)
)

func checkAlphabet(alpha automaton.Alphabet) error {
	for _, s := range alpha {
		switch {
		case s == EpsilonSymbol:
			return malformed("symbol %q is reserved for epsilon", s)
		case !writableSymbol.MatchString(s), stateLike.MatchString(s):
			return malformed("symbol %q cannot be written in the text format", s)
		}
	}
	return nil
}

// FromNFA describes n. Several start states are folded into a fresh start
// state with epsilon moves to each of them.
func FromNFA(n *automaton.NFA) (*Description, error) {
	if err := checkAlphabet(n.Alphabet()); err != nil {
		return nil, err
	}
	states := n.States()
	d := &Description{
		Alphabet:  append([]string(nil), n.Alphabet()...),
		Accepting: n.Accepting(),
	}

	lines := make(map[automaton.State]*StateLine, len(states))
	for _, s := range states {
		d.States = append(d.States, StateLine{State: s})
	}
	for i := range d.States {
		lines[d.States[i].State] = &d.States[i]
	}

	// Transitions come sorted by source, epsilon first, then symbol.
	for _, tr := range n.Transitions() {
		sl := lines[tr.From]
		last := len(sl.Moves) - 1
		if last >= 0 && sl.Moves[last].Epsilon == tr.Epsilon && sl.Moves[last].Symbol == tr.Symbol {
			sl.Moves[last].Targets = append(sl.Moves[last].Targets, tr.To)
			continue
		}
		sl.Moves = append(sl.Moves, Move{Symbol: tr.Symbol, Epsilon: tr.Epsilon, Targets: []automaton.State{tr.To}})
	}

	start := n.Start()
	if len(start) == 1 {
		d.Start = start[0]
		return d, nil
	}
	fresh := states[len(states)-1] + 1
	d.States = append(d.States, StateLine{
		State: fresh,
		Moves: []Move{{Epsilon: true, Targets: start}},
	})
	d.Start = fresh
	return d, nil
}

func FromDFA(a *automaton.DFA) (*Description, error) {
	if err := checkAlphabet(a.Alphabet()); err != nil {
		return nil, err
	}
	d := &Description{
		Alphabet:  append([]string(nil), a.Alphabet()...),
		Start:     a.Start(),
		Accepting: a.Accepting(),
	}
	index := make(map[automaton.State]int)
	for _, s := range a.States() {
		index[s] = len(d.States)
		d.States = append(d.States, StateLine{State: s})
	}
	for _, tr := range a.Transitions() {
		sl := &d.States[index[tr.From]]
		sl.Moves = append(sl.Moves, Move{Symbol: tr.Symbol, Targets: []automaton.State{tr.To}})
	}
	return d, nil
}

func joinStates(states []automaton.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func (d *Description) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(d.States))
	fmt.Fprintf(&b, "{%s}\n", strings.Join(d.Alphabet, ","))
	for _, sl := range d.States {
		moves := make([]string, len(sl.Moves))
		for i, mv := range sl.Moves {
			sym := mv.Symbol
			if mv.Epsilon {
				sym = EpsilonSymbol
			}
			moves[i] = fmt.Sprintf("%s:[%s]", sym, joinStates(mv.Targets))
		}
		fmt.Fprintf(&b, "%v={%s}\n", sl.State, strings.Join(moves, "; "))
	}
	fmt.Fprintf(&b, "=%v\n", d.Start)
	fmt.Fprintf(&b, "{%s}\n", joinStates(d.Accepting))
	return b.String()
}

func (d *Description) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
