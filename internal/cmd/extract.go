package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/parallel-tools/parallel-tools/internal/cliopts"
)

// NewExtractCommand builds the parallel-extract command.
func NewExtractCommand() *cobra.Command {
	return newToolCommand("parallel-extract", "Extract content from web pages", extractUsage, runExtract)
}

func runExtract(ctx context.Context, s *session, args []string) error {
	opts := cliopts.ParseExtract(args)
	if err := opts.Validate(); err != nil {
		return err
	}

	req := opts.Request()
	started := time.Now()
	resp, err := s.client.Extract(ctx, req)
	if err != nil {
		return s.callFailed(err, started)
	}
	s.callDone(req.Endpoint(), len(resp.Results), started)

	return s.renderer.RenderExtract(s.stdout, resp)
}
