package cliopts

import (
	"strings"

	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

// ExtractOptions holds the parsed extract invocation.
type ExtractOptions struct {
	URLs      []string
	Objective *string
}

// ParseExtract scans `<url...> [--objective TEXT]`. Unknown --flags are
// skipped; every other token is a URL.
func ParseExtract(args []string) ExtractOptions {
	var opts ExtractOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == flagObjective:
			value, next, ok := takeValue(args, i)
			i = next
			opts.Objective = optional(value, ok)
		case strings.HasPrefix(arg, "--"):
		default:
			opts.URLs = append(opts.URLs, arg)
		}
	}
	return opts
}

// Validate checks that at least one URL was given.
func (o ExtractOptions) Validate() error {
	if len(o.URLs) == 0 {
		return apperrors.MissingArgument("At least one URL is required")
	}
	return nil
}

// Request builds the extract body.
func (o ExtractOptions) Request() *parallel.ExtractRequest {
	return parallel.NewExtractRequest(o.URLs, o.Objective)
}
