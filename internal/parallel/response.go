package parallel

// Result is one page returned by search or extract.
type Result struct {
	Title       string   `json:"title,omitempty"`
	URL         string   `json:"url"`
	PublishDate string   `json:"publish_date,omitempty"`
	Excerpts    []string `json:"excerpts,omitempty"`
	FullContent string   `json:"full_content,omitempty"`
}

// ExtractError describes a URL the API could not extract.
type ExtractError struct {
	URL            string `json:"url"`
	ErrorType      string `json:"error_type"`
	HTTPStatusCode int    `json:"http_status_code"`
	Content        string `json:"content"`
}

// ExtractResponse is the body returned by POST /v1beta/extract.
type ExtractResponse struct {
	ExtractID string         `json:"extract_id"`
	Results   []Result       `json:"results"`
	Errors    []ExtractError `json:"errors,omitempty"`
}

// SearchResponse is the body returned by POST /v1beta/search.
type SearchResponse struct {
	SearchID string   `json:"search_id"`
	Results  []Result `json:"results"`
}
