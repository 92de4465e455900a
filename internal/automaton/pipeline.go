package automaton

import (
	"log/slog"

	"automata/internal/regex"
)

// Pipeline compiles a regular expression all the way to a minimal DFA.
type Pipeline struct {
	Logger *slog.Logger
}

// Result keeps every intermediate product of a pipeline run.
type Result struct {
	Expr    string
	Postfix []regex.Token
	NFA     *NFA
	DFA     *DFA
	Minimal *DFA
}

func (p *Pipeline) logger() *slog.Logger {
	if p == nil || p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p *Pipeline) Run(expr string) (*Result, error) {
	log := p.logger().With("expr", expr)

	postfix, err := regex.Parse(expr)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed", "postfix", regex.Format(postfix), "tokens", len(postfix))

	nfa, err := Build(postfix)
	if err != nil {
		return nil, err
	}
	log.Debug("built nfa", "states", nfa.Len(), "alphabet", []string(nfa.Alphabet()))

	dfa, err := ToDFA(nfa)
	if err != nil {
		return nil, err
	}
	log.Debug("determinized", "states", dfa.Len(), "accepting", len(dfa.accepting))

	minimal, err := Minimize(dfa)
	if err != nil {
		return nil, err
	}
	log.Debug("minimized", "states", minimal.Len(), "accepting", len(minimal.accepting))

	return &Result{
		Expr:    expr,
		Postfix: postfix,
		NFA:     nfa,
		DFA:     dfa,
		Minimal: minimal,
	}, nil
}
