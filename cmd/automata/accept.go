package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"automata/internal/automaton"
)

type acceptor interface {
	Accept(input string) bool
}

func (a *app) acceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept INPUT...",
		Short: "Run inputs through an automaton",
		Long: "Build an automaton from a regular expression (--regex), an NFA description (--nfa) " +
			"or a DFA description (--dfa) and print whether each input is accepted. " +
			"--via picks the stage that does the matching: nfa, dfa or min. It defaults " +
			"to the automaton that was given.",
		Args: cobra.MinimumNArgs(1),
		RunE: a.runAccept,
	}
	cmd.Flags().String("regex", "", "Regular expression")
	cmd.Flags().String("nfa", "", "NFA description file")
	cmd.Flags().String("dfa", "", "DFA description file")
	cmd.Flags().String("via", "", "Matching stage: nfa, dfa or min")
	cmd.MarkFlagsOneRequired("regex", "nfa", "dfa")
	cmd.MarkFlagsMutuallyExclusive("regex", "nfa", "dfa")
	return cmd
}

func (a *app) runAccept(cmd *cobra.Command, args []string) error {
	regex, _ := cmd.Flags().GetString("regex")
	nfaFile, _ := cmd.Flags().GetString("nfa")
	dfaFile, _ := cmd.Flags().GetString("dfa")
	via, _ := cmd.Flags().GetString("via")

	var m acceptor
	var err error
	switch {
	case regex != "":
		m, err = a.regexAcceptor(regex, via)
	case nfaFile != "":
		m, err = a.nfaAcceptor(nfaFile, via)
	default:
		m, err = a.dfaAcceptor(dfaFile, via)
	}
	if err != nil {
		return err
	}

	for _, input := range args {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", input, m.Accept(input))
	}
	return nil
}

func (a *app) regexAcceptor(expr, via string) (acceptor, error) {
	res, err := a.pipeline().Run(expr)
	if err != nil {
		return nil, err
	}
	switch via {
	case "", "nfa":
		return res.NFA, nil
	case "dfa":
		return res.DFA, nil
	case "min":
		return res.Minimal, nil
	}
	return nil, fmt.Errorf("unknown --via %q", via)
}

func (a *app) nfaAcceptor(path, via string) (acceptor, error) {
	n, err := a.loadNFA(path)
	if err != nil {
		return nil, err
	}
	if via == "" || via == "nfa" {
		return n, nil
	}
	d, err := automaton.ToDFA(n)
	if err != nil {
		return nil, err
	}
	return a.dfaVia(d, via)
}

func (a *app) dfaAcceptor(path, via string) (acceptor, error) {
	if via == "nfa" {
		return nil, errors.New("--via nfa needs --regex or --nfa")
	}
	d, err := a.loadDFA(path)
	if err != nil {
		return nil, err
	}
	return a.dfaVia(d, via)
}

func (a *app) dfaVia(d *automaton.DFA, via string) (acceptor, error) {
	switch via {
	case "", "dfa":
		return d, nil
	case "min":
		m, err := automaton.Minimize(d)
		if err != nil {
			return nil, err
		}
		a.log.Debug("minimized", "states", m.Len())
		return m, nil
	}
	return nil, fmt.Errorf("unknown --via %q", via)
}
