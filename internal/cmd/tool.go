package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/parallel-tools/parallel-tools/internal/cliopts"
	"github.com/parallel-tools/parallel-tools/internal/observability"
)

// runFunc executes one tool after help handling and the API key check.
type runFunc func(ctx context.Context, s *session, args []string) error

// newToolCommand builds a command that hands its raw arguments to run. Cobra
// flag parsing is disabled: each tool scans its own arguments.
func newToolCommand(use, short, usage string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cliopts.IsHelp(args) {
				_, err := io.WriteString(cmd.OutOrStdout(), usage)
				return err
			}

			s, err := newSession(use, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return run(cmd.Context(), s, args)
		},
	}
}

// Execute runs a tool command and exits the process on failure.
func Execute(cmd *cobra.Command) {
	observability.DisableTelemetry()
	if err := cmd.Execute(); err != nil {
		ExitWithError(err)
	}
}
