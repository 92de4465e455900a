package main

import (
	"github.com/spf13/cobra"

	"automata/internal/codegen"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Go matcher from a regular expression",
		Long: "Minimize the DFA of a regular expression and write it out as a Go function " +
			"<name>MatchString that walks its input rune by rune.",
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	cmd.Flags().String("regex", "", "Regular expression")
	cmd.Flags().String("name", "", "Prefix of the generated identifiers")
	cmd.Flags().String("package", "matcher", "Package of the generated file")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("regex")
	_ = a.v.BindPFlag("package", cmd.Flags().Lookup("package"))
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	expr, _ := cmd.Flags().GetString("regex")
	name, _ := cmd.Flags().GetString("name")
	output, _ := cmd.Flags().GetString("output")
	opts := codegen.Options{Package: a.v.GetString("package"), Name: name}

	res, err := a.pipeline().Run(expr)
	if err != nil {
		return err
	}
	if output != "" {
		if err := codegen.Write(res.Minimal, opts, output); err != nil {
			return err
		}
		a.log.Debug("generated", "path", output, "func", opts.FuncName())
		return nil
	}
	f, err := codegen.Generate(res.Minimal, opts)
	if err != nil {
		return err
	}
	return f.Render(cmd.OutOrStdout())
}
