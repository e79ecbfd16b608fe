package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// TextRenderer renders the line-oriented terminal layout.
type TextRenderer struct{}

// RenderExtract writes extracted pages followed by any per-URL errors.
func (r *TextRenderer) RenderExtract(w io.Writer, resp *parallel.ExtractResponse) error {
	if resp == nil {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Extract ID: %s\n\n", resp.ExtractID)

	if n := len(resp.Results); n > 0 {
		fmt.Fprintf(&sb, "Successfully extracted %d page(s):\n\n", n)
		sb.WriteString(Rule() + "\n")

		for i, result := range resp.Results {
			sb.WriteString("\n")
			fmt.Fprintf(&sb, "Result %d: %s\n", i+1, titleOrUntitled(result))
			fmt.Fprintf(&sb, "URL: %s\n", result.URL)
			sb.WriteString("\n")
			writeExcerpts(&sb, result.Excerpts)

			if result.FullContent != "" {
				sb.WriteString("Full Content:\n\n")
				sb.WriteString(result.FullContent + "\n\n")
			}

			if i < n-1 {
				sb.WriteString(Rule() + "\n")
			}
		}
	}

	if len(resp.Errors) > 0 {
		fmt.Fprintf(&sb, "\nErrors (%d):\n", len(resp.Errors))
		for i, e := range resp.Errors {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, e.URL)
			fmt.Fprintf(&sb, "   Error: %s (HTTP %d)\n", e.ErrorType, e.HTTPStatusCode)
			fmt.Fprintf(&sb, "   %s\n\n", e.Content)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderSearch writes the objective/queries search layout.
func (r *TextRenderer) RenderSearch(w io.Writer, resp *parallel.SearchResponse) error {
	if resp == nil || len(resp.Results) == 0 {
		return WriteNoResults(w)
	}

	n := len(resp.Results)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d results (Search ID: %s)\n\n", n, resp.SearchID)
	sb.WriteString(Rule() + "\n")

	for i, result := range resp.Results {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Result %d: %s\n", i+1, titleOrUntitled(result))
		fmt.Fprintf(&sb, "URL: %s\n", result.URL)
		if result.PublishDate != "" {
			fmt.Fprintf(&sb, "Published: %s\n", result.PublishDate)
		}
		sb.WriteString("\n")
		writeExcerpts(&sb, result.Excerpts)

		if i < n-1 {
			sb.WriteString(Rule() + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderQuery writes the query/mode search layout: a banner naming what was
// searched, then compact indented result blocks.
func (r *TextRenderer) RenderQuery(w io.Writer, req *parallel.SearchQueryRequest, resp *parallel.SearchResponse) error {
	if resp == nil || len(resp.Results) == 0 {
		return WriteNoResults(w)
	}

	n := len(resp.Results)
	var sb strings.Builder
	if req != nil {
		fmt.Fprintf(&sb, "Found %d results for \"%s\" (mode: %s, Search ID: %s)\n\n", n, req.Objective, req.Mode, resp.SearchID)
	} else {
		fmt.Fprintf(&sb, "Found %d results (Search ID: %s)\n\n", n, resp.SearchID)
	}
	sb.WriteString(Rule() + "\n")

	for i, result := range resp.Results {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, titleOrUntitled(result))
		fmt.Fprintf(&sb, "    %s\n", result.URL)
		if result.PublishDate != "" {
			fmt.Fprintf(&sb, "    Published: %s\n", result.PublishDate)
		}
		sb.WriteString("\n")
		for _, excerpt := range result.Excerpts {
			sb.WriteString(excerpt + "\n\n")
		}

		if i < n-1 {
			sb.WriteString(Rule() + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeExcerpts(sb *strings.Builder, excerpts []string) {
	if len(excerpts) == 0 {
		return
	}
	sb.WriteString("Excerpts:\n\n")
	for _, excerpt := range excerpts {
		sb.WriteString(excerpt + "\n\n")
	}
}
