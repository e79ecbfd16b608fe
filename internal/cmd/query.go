package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/parallel-tools/parallel-tools/internal/cliopts"
	"github.com/parallel-tools/parallel-tools/internal/output"
)

// NewQueryCommand builds the parallel-query command (query words with a
// selectable mode and result count).
func NewQueryCommand() *cobra.Command {
	return newToolCommand("parallel-query", "Search the web for a query", queryUsage, runQuery)
}

func runQuery(ctx context.Context, s *session, args []string) error {
	opts, err := cliopts.ParseQuery(args)
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
	return s.renderer.RenderQuery(s.stdout, req, resp)
}
