/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nanaki-93/shelltree/config"
	"github.com/spf13/cobra"
)

// configCmd groups the config file subcommands
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the shelltree config file",
	}
	cmd.AddCommand(a.configInitCmd())
	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file holding the default settings",
		Long: `Write a YAML config file with every setting at its default value. The file
goes to the given path, else to --config, else to $` + config.EnvPath + ` or ./` + config.DefaultPath + `.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
				path = f.Value.String()
			}
			if len(args) > 0 {
				path = args[0]
			}

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return fmt.Errorf("config %s already exists, use --force to overwrite it", path)
				}
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("cannot check config at %s: %w", path, err)
				}
			}

			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			a.logger.Info("config written", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Config written to", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}
