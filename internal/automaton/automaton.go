// Package automaton builds and runs finite automata over string symbols:
// Thompson construction from a postfix regular expression, NFA simulation
// with epsilon closure, subset construction and table-filling minimization.
package automaton

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedDescription reports an automaton whose parts do not fit
// together: dangling state references, unknown symbols or epsilon moves in a
// DFA.
var ErrMalformedDescription = errors.New("malformed automaton description")

// State identifies a state within one automaton.
type State int

func (s State) String() string { return "Q" + strconv.Itoa(int(s)) }

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

func (s StateSet) Add(st State) { s[st] = struct{}{} }

func (s StateSet) Contains(st State) bool {
	_, ok := s[st]
	return ok
}

func (s StateSet) AddAll(other StateSet) {
	for st := range other {
		s[st] = struct{}{}
	}
}

func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	out.AddAll(s)
	return out
}

func (s StateSet) Intersects(other StateSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for st := range small {
		if big.Contains(st) {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key is a canonical encoding of the set: two sets have the same key iff
// they have the same members, whatever order they were filled in.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, st := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(st)))
	}
	return b.String()
}

// Alphabet is a sorted set of symbols. Treat it as immutable.
type Alphabet []string

func NewAlphabet(symbols ...string) Alphabet {
	seen := make(map[string]struct{}, len(symbols))
	out := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (a Alphabet) Contains(sym string) bool {
	i := sort.SearchStrings(a, sym)
	return i < len(a) && a[i] == sym
}

// Union returns the symbols of both alphabets.
func (a Alphabet) Union(b Alphabet) Alphabet {
	all := make([]string, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return NewAlphabet(all...)
}

// Symbols splits input into one symbol per character.
func Symbols(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(input, "")
}

// Transition is one labelled edge. Epsilon edges leave Symbol empty.
type Transition struct {
	From    State
	Symbol  string
	Epsilon bool
	To      State
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Epsilon != b.Epsilon {
			return a.Epsilon
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.To < b.To
	})
}
