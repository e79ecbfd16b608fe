package cliopts

import (
	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// SearchOptions holds the parsed objective/queries search invocation. Mode and
// result count are fixed by the tool.
type SearchOptions struct {
	Objective     *string
	SearchQueries []string
}

// ParseSearch scans `--objective TEXT | --search-queries "q1,q2"`. All other
// tokens are ignored.
func ParseSearch(args []string) (SearchOptions, error) {
	var opts SearchOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case flagObjective:
			value, next, ok := takeValue(args, i)
			i = next
			opts.Objective = optional(value, ok)
		case flagSearchQueries:
			value, next, ok := takeValue(args, i)
			i = next
			if !ok {
				return SearchOptions{}, apperrors.MissingOptionValue(flagSearchQueries)
			}
			opts.SearchQueries = SplitQueries(value)
		}
	}
	return opts, nil
}

func (o SearchOptions) hasObjective() bool {
	return o.Objective != nil && *o.Objective != ""
}

// Validate checks that an objective or a query list was given.
func (o SearchOptions) Validate() error {
	if !o.hasObjective() && o.SearchQueries == nil {
		return apperrors.MissingArgument("Must provide --objective or --search-queries")
	}
	return nil
}

// Request builds the search body. The objective wins when both are present.
func (o SearchOptions) Request() *parallel.SearchObjectiveRequest {
	if o.hasObjective() {
		return parallel.NewObjectiveSearch(*o.Objective)
	}
	return parallel.NewQueriesSearch(o.SearchQueries)
}
