package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"automata/internal/automaton"
	"automata/internal/description"
)

// app carries what every subcommand shares: settings and the logger.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "automata",
		Short: "Regular expressions to minimal DFAs",
		Long: "automata compiles regular expressions over single-character symbols into " +
			"Thompson NFAs, determinizes and minimizes them, and runs inputs through the result.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.initLogger(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log every pipeline stage to stderr")
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	a.v.SetEnvPrefix("AUTOMATA")
	a.v.AutomaticEnv()

	root.AddCommand(
		a.acceptCmd(),
		a.compileCmd(),
		a.convertCmd(),
		a.minimizeCmd(),
		a.equivalentCmd(),
		a.generateCmd(),
	)
	return root
}

func (a *app) initLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) pipeline() *automaton.Pipeline {
	return &automaton.Pipeline{Logger: a.log}
}

func (a *app) loadNFA(path string) (*automaton.NFA, error) {
	desc, err := description.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	n, err := desc.NFA()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a.log.Debug("loaded nfa", "path", path, "states", n.Len())
	return n, nil
}

func (a *app) loadDFA(path string) (*automaton.DFA, error) {
	desc, err := description.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	d, err := desc.DFA()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a.log.Debug("loaded dfa", "path", path, "states", d.Len())
	return d, nil
}

func writeNFA(w io.Writer, n *automaton.NFA) error {
	desc, err := description.FromNFA(n)
	if err != nil {
		return err
	}
	_, err = desc.WriteTo(w)
	return err
}

func writeDFA(w io.Writer, d *automaton.DFA) error {
	desc, err := description.FromDFA(d)
	if err != nil {
		return err
	}
	_, err = desc.WriteTo(w)
	return err
}
