/*
Copyright © 2025 Marco Andreose <andreose.marco93@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/nanaki-93/shelltree/service"
	"github.com/spf13/cobra"
)

const stdinInput = "-"

// inputOptions selects where the transcript comes from: a file, stdin or a
// file committed to a git repository.
type inputOptions struct {
	input string
	repo  string
	rev   string
	path  string
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", `transcript file, "-" for stdin (defaults to the configured input)`)
	cmd.Flags().StringVar(&o.repo, "repo", "", "read the transcript from this git repository")
	cmd.Flags().StringVar(&o.rev, "rev", "HEAD", "git revision to read the transcript at")
	cmd.Flags().StringVar(&o.path, "path", "", "transcript path inside the git repository (defaults to the configured input)")
}

func (a *app) source(cmd *cobra.Command, o *inputOptions, args []string) service.TranscriptSource {
	if o.repo != "" {
		path := o.path
		if path == "" {
			path = a.cfg.Input
		}
		return service.GitSource{RepoPath: o.repo, Revision: o.rev, Path: path}
	}

	input := o.input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		input = a.cfg.Input
	}
	if input == stdinInput {
		return service.ReaderSource{Label: "stdin", Reader: cmd.InOrStdin()}
	}
	return service.FileSource{Path: input}
}

// analyze runs the whole pipeline for a command and warns about malformed
// lines, which never stop the run.
func (a *app) analyze(cmd *cobra.Command, o *inputOptions, args []string) (*service.Report, service.TranscriptService, error) {
	svc := service.NewServiceWithLogger(a.logger)
	report, err := svc.Analyze(a.source(cmd, o, args))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to analyze transcript: %w", err)
	}
	if report.HasDiagnostics() {
		a.logger.Warn("transcript contains malformed lines",
			"source", report.Source,
			"invalid", len(report.Invalid()),
			"dropped", len(report.Dropped))
	}
	return report, svc, nil
}
