package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/parallel-tools/parallel-tools/internal/cliopts"
	"github.com/parallel-tools/parallel-tools/internal/output"
)

// NewSearchCommand builds the parallel-search command (objective or keyword
// queries, agentic mode, five results).
func NewSearchCommand() *cobra.Command {
	return newToolCommand("parallel-search", "Search the web by objective or keyword queries", searchUsage, runSearch)
}

func runSearch(ctx context.Context, s *session, args []string) error {
	opts, err := cliopts.ParseSearch(args)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	req := opts.Request()
	started := time.Now()
	resp, err := s.client.Search(ctx, req)
	if err != nil {
		return s.callFailed(err, started)
	}
	s.callDone(req.Endpoint(), len(resp.Results), started)

	if len(resp.Results) == 0 {
		return output.WriteNoResults(s.stdout)
	}
	return s.renderer.RenderSearch(s.stdout, resp)
}
