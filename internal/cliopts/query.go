package cliopts

import (
	"strconv"
	"strings"

	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// DefaultQueryMaxResults applies when --max is not given.
const DefaultQueryMaxResults = 10

// CLI names for the search modes.
const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

// QueryOptions holds the parsed query/mode search invocation.
type QueryOptions struct {
	Query      string
	Mode       string
	Objective  *string
	MaxResults int
}

// ParseQuery scans `<query words...> [--mode basic|advanced] [--objective TEXT] [--max N]`.
// Every token that is not a recognized flag or its value is a query word.
func ParseQuery(args []string) (QueryOptions, error) {
	opts := QueryOptions{
		Mode:       parallel.ModeOneShot,
		MaxResults: DefaultQueryMaxResults,
	}
	var words []string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case flagHelp:
		case flagObjective:
			value, next, ok := takeValue(args, i)
			i = next
			opts.Objective = optional(value, ok)
		case flagMode:
			value, next, _ := takeValue(args, i)
			i = next
			mode, err := parseMode(value)
			if err != nil {
				return QueryOptions{}, err
			}
			opts.Mode = mode
		case flagMax:
			value, next, _ := takeValue(args, i)
			i = next
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return QueryOptions{}, apperrors.InvalidOption(flagMax, value, "a positive integer")
			}
			opts.MaxResults = n
		default:
			words = append(words, arg)
		}
	}

	opts.Query = strings.Join(words, " ")
	return opts, nil
}

func parseMode(value string) (string, error) {
	switch value {
	case ModeBasic:
		return parallel.ModeOneShot, nil
	case ModeAdvanced:
		return parallel.ModeAgentic, nil
	default:
		return "", apperrors.InvalidOption(flagMode, value, "basic or advanced")
	}
}

func (o QueryOptions) hasObjective() bool {
	return o.Objective != nil && *o.Objective != ""
}

// Validate checks that there is something to search for.
func (o QueryOptions) Validate() error {
	if o.Query == "" && !o.hasObjective() {
		return apperrors.MissingArgument("At least one query word or --objective is required")
	}
	return nil
}

// Request builds the search body.
func (o QueryOptions) Request() *parallel.SearchQueryRequest {
	return parallel.NewQuerySearch(o.Query, o.Objective, o.Mode, o.MaxResults)
}
