package main

import (
	"github.com/spf13/cobra"

	"automata/internal/automaton"
)

func (a *app) minimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minimize DFA_FILE",
		Short: "Minimize a DFA description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDFA(args[0])
			if err != nil {
				return err
			}
			m, err := automaton.Minimize(d)
			if err != nil {
				return err
			}
			a.log.Debug("minimized", "from", d.Len(), "to", m.Len())
			return writeDFA(cmd.OutOrStdout(), m)
		},
	}
}
