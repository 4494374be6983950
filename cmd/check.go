/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
func (a *app) checkCmd() *cobra.Command {
	var (
		in     inputOptions
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "check [transcript]",
		Short: "Report malformed lines in a transcript",
		Long: `Print every command that could not be parsed and every listing line that was
dropped, with its line number. Malformed lines never change the rebuilt tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, svc, err := a.analyze(cmd, &in, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			svc.PrintDiagnostics(out, report)
			invalid, dropped := len(report.Invalid()), len(report.Dropped)
			fmt.Fprintf(out, "%d lines, %d commands, %d invalid, %d dropped\n",
				report.Lines, len(report.Commands), invalid, dropped)

			if strict && report.HasDiagnostics() {
				return fmt.Errorf("%s has %d malformed lines", report.Source, invalid+dropped)
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any line is malformed")
	return cmd
}
