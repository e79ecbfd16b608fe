// Package output renders API responses for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// RuleWidth is the width of the horizontal rule between results.
const RuleWidth = 80

// NoResults is printed alone when a search returns nothing.
const NoResults = "No results found"

// Rule returns the horizontal separator line.
func Rule() string {
	return strings.Repeat("─", RuleWidth)
}

// Renderer writes responses in one output format. Renderers never modify the
// response they are given.
type Renderer interface {
	// RenderExtract writes an extract response.
	RenderExtract(w io.Writer, resp *parallel.ExtractResponse) error
	// RenderSearch writes a response from the objective/queries search tool.
	RenderSearch(w io.Writer, resp *parallel.SearchResponse) error
	// RenderQuery writes a response from the query/mode search tool.
	RenderQuery(w io.Writer, req *parallel.SearchQueryRequest, resp *parallel.SearchResponse) error
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatTable):
		return FormatTable, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewRenderer returns a renderer for the requested format.
func NewRenderer(format Format) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{Indent: true}
	case FormatTable:
		return &TableRenderer{}
	case FormatMarkdown:
		return &TableRenderer{Markdown: true}
	default:
		return &TextRenderer{}
	}
}

// WriteNoResults writes the fixed empty-search line.
func WriteNoResults(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoResults)
	return err
}

func titleOrUntitled(r parallel.Result) string {
	if r.Title == "" {
		return "Untitled"
	}
	return r.Title
}
