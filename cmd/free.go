/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/nanaki-93/shelltree/model"
	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

// freeCmd represents the free command
func (a *app) freeCmd() *cobra.Command {
	var (
		in       inputOptions
		diskSize int64
		required int64
	)
	cmd := &cobra.Command{
		Use:   "free [transcript]",
		Short: "Find the smallest directory to delete to free enough space",
		Long: `Treat the rebuilt tree as the whole content of a disk and print the smallest
directory whose deletion leaves at least the required amount of free space.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("disk") {
				diskSize = a.cfg.DiskSize
			}
			if !cmd.Flags().Changed("need") {
				required = a.cfg.RequiredFree
			}

			report, svc, err := a.analyze(cmd, &in, args)
			if err != nil {
				return err
			}

			used := report.Tree.RootSize()
			if used > diskSize {
				return fmt.Errorf("tree uses %d bytes, more than the disk size %d", used, diskSize)
			}
			free := diskSize - used
			if free >= required {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to delete: %s already free\n", model.FormatSize(free))
				return nil
			}

			dir, ok := report.Tree.FreeSpaceCandidate(diskSize, required)
			if !ok {
				return fmt.Errorf("no directory frees %d bytes", required-free)
			}
			svc.PrintDirectories(cmd.OutOrStdout(), []service.SizedDir{dir})
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().Int64Var(&diskSize, "disk", 0, "total disk size (defaults to the configured disk_size)")
	cmd.Flags().Int64Var(&required, "need", 0, "free space required (defaults to the configured required_free)")
	return cmd
}
