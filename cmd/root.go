// Package cmd
/*
	Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/nanaki-93/shelltree/config"
	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

// skipConfigLoad marks commands that must run before a config file exists.
const skipConfigLoad = "shelltree/skip-config-load"

// app carries what every subcommand needs once the root command has run its
// pre-run hook.
type app struct {
	cfg    config.Config
	logger service.Logger
}

// NewRootCmd builds the command tree. Each call returns fresh commands and
// flags.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: service.NewNopLogger(),
	}

	var (
		verbose bool
		cfgPath string
	)

	rootCmd := &cobra.Command{
		Use:   "shelltree",
		Short: "Rebuild a directory tree from a shell transcript and query its sizes",
		Long: `Shelltree replays a recorded shell session made of "$ cd" and "$ ls" commands,
rebuilds the directory tree it walked through, computes the total size of every
directory and answers size queries over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, optional := cfgPath, false
			if path == "" {
				path = config.Path()
				optional = os.Getenv(config.EnvPath) == ""
			}
			cfg := config.DefaultConfig()
			if cmd.Annotations[skipConfigLoad] == "" {
				var err error
				if cfg, err = config.Load(path, optional); err != nil {
					return err
				}
			}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			logger, err := service.NewLoggerWithLevel(level)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}

			a.cfg = cfg
			a.logger = logger
			a.logger.Debug("configuration loaded", "path", path, "threshold", cfg.Threshold)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zl, ok := a.logger.(*service.ZapLogger); ok {
				_ = zl.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default $"+config.EnvPath+" or ./"+config.DefaultPath+")")

	rootCmd.AddCommand(a.sumCmd())
	rootCmd.AddCommand(a.dirsCmd())
	rootCmd.AddCommand(a.freeCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(a.recordCmd())
	rootCmd.AddCommand(a.configCmd())
	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
