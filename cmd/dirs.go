/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

// dirsCmd represents the dirs command
func (a *app) dirsCmd() *cobra.Command {
	var (
		in      inputOptions
		maxSize int64
		limit   int
	)
	cmd := &cobra.Command{
		Use:   "dirs [transcript]",
		Short: "List directories and their sizes",
		Long: `List every directory of the rebuilt tree with its total size, largest first.
Use --max to keep only directories at or below a size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, svc, err := a.analyze(cmd, &in, args)
			if err != nil {
				return err
			}

			dirs := report.Tree.All()
			if cmd.Flags().Changed("max") {
				dirs = report.Tree.AtMost(maxSize)
			}
			dirs = service.ReorderDirectories(dirs)
			if limit > 0 && len(dirs) > limit {
				dirs = dirs[:limit]
			}

			svc.PrintDirectories(cmd.OutOrStdout(), dirs)
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().Int64Var(&maxSize, "max", 0, "only list directories at or below this size")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "list at most this many directories (0 for all)")
	return cmd
}
