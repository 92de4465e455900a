package main

import (
	"github.com/spf13/cobra"

	"automata/internal/automaton"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert NFA_FILE",
		Short: "Determinize an NFA description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNFA(args[0])
			if err != nil {
				return err
			}
			d, err := automaton.ToDFA(n)
			if err != nil {
				return err
			}
			a.log.Debug("determinized", "states", d.Len())
			return writeDFA(cmd.OutOrStdout(), d)
		},
	}
}
