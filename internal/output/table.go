package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// TableRenderer renders result summaries as an ASCII or Markdown table.
// Excerpts and full content are left out; use the text format to read them.
type TableRenderer struct {
	Markdown bool
}

// RenderExtract writes one row per extracted page and one per failed URL.
func (r *TableRenderer) RenderExtract(w io.Writer, resp *parallel.ExtractResponse) error {
	if resp == nil {
		return nil
	}

	t := table.NewWriter()
	t.SetTitle("Extract ID: " + resp.ExtractID)
	t.AppendHeader(table.Row{"#", "Title", "URL", "Status"})

	for i, result := range resp.Results {
		t.AppendRow(table.Row{i + 1, titleOrUntitled(result), result.URL, contentLabel(result)})
	}
	for _, e := range resp.Errors {
		t.AppendRow(table.Row{"-", e.ErrorType, e.URL, fmt.Sprintf("HTTP %d", e.HTTPStatusCode)})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d extracted, %d failed", len(resp.Results), len(resp.Errors)), ""})
	return r.write(w, t)
}

// RenderSearch writes one row per search result.
func (r *TableRenderer) RenderSearch(w io.Writer, resp *parallel.SearchResponse) error {
	if resp == nil || len(resp.Results) == 0 {
		return WriteNoResults(w)
	}
	return r.write(w, searchTable("Search ID: "+resp.SearchID, resp.Results))
}

// RenderQuery writes one row per search result, titled with the objective.
func (r *TableRenderer) RenderQuery(w io.Writer, req *parallel.SearchQueryRequest, resp *parallel.SearchResponse) error {
	if resp == nil || len(resp.Results) == 0 {
		return WriteNoResults(w)
	}
	title := "Search ID: " + resp.SearchID
	if req != nil {
		title = fmt.Sprintf("%s (mode: %s, Search ID: %s)", req.Objective, req.Mode, resp.SearchID)
	}
	return r.write(w, searchTable(title, resp.Results))
}

func searchTable(title string, results []parallel.Result) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Title", "URL", "Published", "Excerpts"})
	for i, result := range results {
		t.AppendRow(table.Row{i + 1, titleOrUntitled(result), result.URL, result.PublishDate, len(result.Excerpts)})
	}
	return t
}

func (r *TableRenderer) write(w io.Writer, t table.Writer) error {
	var rendered string
	if !r.Markdown {
		t.SetStyle(table.StyleRounded)
	}
	// Footers carry sentences; keep them as written.
	t.Style().Format.Footer = text.FormatDefault
	if r.Markdown {
		rendered = t.RenderMarkdown()
	} else {
		rendered = t.Render()
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, err := io.WriteString(w, rendered)
	return err
}

func contentLabel(r parallel.Result) string {
	switch {
	case r.FullContent != "":
		return "full content"
	case len(r.Excerpts) > 0:
		return fmt.Sprintf("%d excerpt(s)", len(r.Excerpts))
	default:
		return "empty"
	}
}
