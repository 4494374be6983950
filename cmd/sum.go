/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

// sumCmd represents the sum command
func (a *app) sumCmd() *cobra.Command {
	var (
		in        inputOptions
		threshold int64
	)
	cmd := &cobra.Command{
		Use:   "sum [transcript]",
		Short: "Sum the sizes of directories at or below a threshold",
		Long: `Rebuild the tree from a transcript and print, as a single integer, the sum of
the total sizes of every directory whose total size is at most the threshold.`,
		Example: "  shelltree sum terminal-output.txt\n  shelltree sum -t 600 -i -",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Threshold
			}
			if threshold < 0 {
				return fmt.Errorf("threshold must not be negative: %d", threshold)
			}

			report, _, err := a.analyze(cmd, &in, args)
			if err != nil {
				return err
			}

			dirs := report.Tree.AtMost(threshold)
			a.logger.Debug("threshold query", "threshold", threshold, "matches", len(dirs))
			fmt.Fprintln(cmd.OutOrStdout(), service.SumSizes(dirs))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().Int64VarP(&threshold, "threshold", "t", 0, "inclusive size limit (defaults to the configured threshold)")
	return cmd
}
