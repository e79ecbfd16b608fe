package parallel

// Endpoint paths under the API base URL.
const (
	ExtractPath = "/v1beta/extract"
	SearchPath  = "/v1beta/search"
)

// Search modes accepted by the search endpoint.
const (
	ModeOneShot = "one-shot"
	ModeAgentic = "agentic"
)

// Request is one of ExtractRequest, SearchObjectiveRequest or SearchQueryRequest.
type Request interface {
	// Endpoint returns the API path the request is posted to.
	Endpoint() string
	isRequest()
}

// ExtractRequest is the body of POST /v1beta/extract.
//
// Excerpts and FullContent are always sent; exactly one of them is true.
type ExtractRequest struct {
	URLs        []string `json:"urls"`
	Excerpts    bool     `json:"excerpts"`
	FullContent bool     `json:"full_content"`
	Objective   *string  `json:"objective,omitempty"`
}

// NewExtractRequest builds an extract body. Without an objective the API
// returns full page content; with one it returns relevant excerpts only.
// An empty objective counts as unset.
func NewExtractRequest(urls []string, objective *string) *ExtractRequest {
	hasObjective := objective != nil && *objective != ""
	req := &ExtractRequest{
		URLs:        append([]string(nil), urls...),
		Excerpts:    hasObjective,
		FullContent: !hasObjective,
	}
	if hasObjective {
		value := *objective
		req.Objective = &value
	}
	return req
}

func (r *ExtractRequest) Endpoint() string { return ExtractPath }
func (r *ExtractRequest) isRequest()       {}

// SearchObjectiveRequest is the body sent by the objective/queries search tool.
// Only one of Objective and SearchQueries is populated.
type SearchObjectiveRequest struct {
	Mode          string   `json:"mode"`
	MaxResults    int      `json:"max_results"`
	Objective     *string  `json:"objective,omitempty"`
	SearchQueries []string `json:"search_queries,omitempty"`
}

// Fixed settings of the objective/queries search tool.
const (
	ObjectiveSearchMode       = ModeAgentic
	ObjectiveSearchMaxResults = 5
)

// NewObjectiveSearch builds a search body driven by a natural-language objective.
func NewObjectiveSearch(objective string) *SearchObjectiveRequest {
	return &SearchObjectiveRequest{
		Mode:       ObjectiveSearchMode,
		MaxResults: ObjectiveSearchMaxResults,
		Objective:  &objective,
	}
}

// NewQueriesSearch builds a search body driven by keyword queries.
func NewQueriesSearch(queries []string) *SearchObjectiveRequest {
	return &SearchObjectiveRequest{
		Mode:          ObjectiveSearchMode,
		MaxResults:    ObjectiveSearchMaxResults,
		SearchQueries: append([]string(nil), queries...),
	}
}

func (r *SearchObjectiveRequest) Endpoint() string { return SearchPath }
func (r *SearchObjectiveRequest) isRequest()       {}

// SearchQueryRequest is the body sent by the query/mode search tool. The API
// has no raw query field, so the query text travels as the objective.
type SearchQueryRequest struct {
	Objective  string `json:"objective"`
	Mode       string `json:"mode"`
	MaxResults int    `json:"max_results"`
}

// NewQuerySearch builds a query/mode search body. An explicit objective wins
// over the joined query text.
func NewQuerySearch(query string, objective *string, mode string, maxResults int) *SearchQueryRequest {
	text := query
	if objective != nil && *objective != "" {
		text = *objective
	}
	return &SearchQueryRequest{
		Objective:  text,
		Mode:       mode,
		MaxResults: maxResults,
	}
}

func (r *SearchQueryRequest) Endpoint() string { return SearchPath }
func (r *SearchQueryRequest) isRequest()       {}
