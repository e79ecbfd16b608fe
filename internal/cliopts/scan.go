// Package cliopts scans the raw argument lists of the three tools into
// options, validates them and maps them onto API request bodies.
//
// Scanning is deliberately permissive: a value-taking flag consumes the next
// token whatever it is, including another flag.
package cliopts

import "strings"

const (
	flagHelp          = "--help"
	flagObjective     = "--objective"
	flagSearchQueries = "--search-queries"
	flagMode          = "--mode"
	flagMax           = "--max"
)

// IsHelp reports whether the invocation asks for usage text: no arguments at
// all, or --help as the first argument.
func IsHelp(args []string) bool {
	return len(args) == 0 || args[0] == flagHelp
}

// takeValue returns the token after args[i] and the index of the last consumed
// token. ok is false when the flag is the final argument.
func takeValue(args []string, i int) (value string, next int, ok bool) {
	next = i + 1
	if next >= len(args) {
		return "", next, false
	}
	return args[next], next, true
}

// optional returns a pointer to value, or nil when the flag had no value.
func optional(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}

// SplitQueries splits a comma-separated --search-queries value. Segments are
// trimmed; empty segments are kept in place.
func SplitQueries(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
