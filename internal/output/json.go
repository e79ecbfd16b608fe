package output

import (
	"encoding/json"
	"io"

	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// JSONRenderer renders responses as JSON.
type JSONRenderer struct {
	Indent bool
}

// RenderExtract writes the extract response as JSON.
func (r *JSONRenderer) RenderExtract(w io.Writer, resp *parallel.ExtractResponse) error {
	return r.encode(w, resp)
}

// RenderSearch writes the search response as JSON.
func (r *JSONRenderer) RenderSearch(w io.Writer, resp *parallel.SearchResponse) error {
	return r.encode(w, resp)
}

// RenderQuery writes the search response as JSON.
func (r *JSONRenderer) RenderQuery(w io.Writer, _ *parallel.SearchQueryRequest, resp *parallel.SearchResponse) error {
	return r.encode(w, resp)
}

func (r *JSONRenderer) encode(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}
