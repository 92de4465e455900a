package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"automata/internal/automaton"
)

func (a *app) equivalentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent REGEX REGEX",
		Short: "Report whether two regular expressions describe the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dfas [2]*automaton.DFA
			for i, expr := range args {
				res, err := a.pipeline().Run(expr)
				if err != nil {
					return err
				}
				dfas[i] = res.Minimal
			}
			eq, err := automaton.Equivalent(dfas[0], dfas[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eq)
			return nil
		},
	}
}
