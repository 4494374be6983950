/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

// recordCmd represents the record command
func (a *app) recordCmd() *cobra.Command {
	var (
		dirToScan string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Write a transcript of a real directory",
		Long: `Scan a directory recursively and print the shell session that lists it, in
the same "$ cd" / "$ ls" format the other commands read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dirToScan == "" {
				var err error
				dirToScan, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			rs := service.NewRecordService(a.logger)
			lines, err := rs.Record(ctx, dirToScan)
			if err != nil {
				return fmt.Errorf("failed to record directory: %w", err)
			}

			transcript := strings.Join(lines, "\n") + "\n"
			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), transcript)
				return err
			}
			if err := os.WriteFile(output, []byte(transcript), 0644); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
			a.logger.Info("transcript written", "path", output, "lines", len(lines))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dirToScan, "dir", "d", "", "Directory to scan (defaults to current directory)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the transcript to this file instead of stdout")
	return cmd
}
