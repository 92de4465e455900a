package main

import "github.com/spf13/cobra"

func (a *app) compileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile REGEX",
		Short: "Print the automaton built from a regular expression",
		Long: "Compile a regular expression and print the Thompson NFA in the text description " +
			"format, or the DFA with --dfa, or the minimal DFA with --minimize.",
		Args: cobra.ExactArgs(1),
		RunE: a.runCompile,
	}
	cmd.Flags().Bool("dfa", false, "Print the DFA from subset construction")
	cmd.Flags().Bool("minimize", false, "Print the minimal DFA")
	_ = a.v.BindPFlag("minimize", cmd.Flags().Lookup("minimize"))
	return cmd
}

func (a *app) runCompile(cmd *cobra.Command, args []string) error {
	asDFA, _ := cmd.Flags().GetBool("dfa")
	minimize := a.v.GetBool("minimize")

	res, err := a.pipeline().Run(args[0])
	if err != nil {
		return err
	}
	switch {
	case minimize:
		return writeDFA(cmd.OutOrStdout(), res.Minimal)
	case asDFA:
		return writeDFA(cmd.OutOrStdout(), res.DFA)
	}
	return writeNFA(cmd.OutOrStdout(), res.NFA)
}
