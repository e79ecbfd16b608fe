package cliopts

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

func requireKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.Error(t, err)
	var cliErr *apperrors.Error
	require.True(t, stderrors.As(err, &cliErr), "expected *errors.Error, got %T", err)
	require.Equal(t, kind, cliErr.Kind)
}

func TestIsHelp(t *testing.T) {
	cases := []struct {
		args []string
		want bool
	}{
		{nil, true},
		{[]string{}, true},
		{[]string{"--help"}, true},
		{[]string{"--help", "https://a.example", "--objective", "x"}, true},
		{[]string{"https://a.example", "--help"}, false},
		{[]string{"-h"}, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, IsHelp(tc.args), "%q", tc.args)
	}
}

func TestSplitQueries(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, SplitQueries("a, b ,c"))
	require.Equal(t, []string{"a", "", "b"}, SplitQueries("a,,b"))
	require.Equal(t, []string{""}, SplitQueries(""))
	require.Equal(t, []string{"SvelteKit +SSR +performance", "svelte ssr benchmark"},
		SplitQueries("SvelteKit +SSR +performance,svelte ssr benchmark"))
}

func TestParseExtract(t *testing.T) {
	opts := ParseExtract([]string{"https://a.example", "--verbose", "https://b.example", "--objective", "pricing"})
	require.Equal(t, []string{"https://a.example", "https://b.example"}, opts.URLs)
	require.NotNil(t, opts.Objective)
	require.Equal(t, "pricing", *opts.Objective)
	require.NoError(t, opts.Validate())
}

func TestParseExtractConsumesNextTokenUnconditionally(t *testing.T) {
	opts := ParseExtract([]string{"--objective", "https://a.example"})
	require.Empty(t, opts.URLs)
	require.Equal(t, "https://a.example", *opts.Objective)
	requireKind(t, opts.Validate(), apperrors.KindMissingRequiredArgument)

	opts = ParseExtract([]string{"https://a.example", "--objective"})
	require.Equal(t, []string{"https://a.example"}, opts.URLs)
	require.Nil(t, opts.Objective)
}

func TestExtractRequestMapping(t *testing.T) {
	opts := ParseExtract([]string{"https://a.example"})
	req := opts.Request()
	require.True(t, req.FullContent)
	require.False(t, req.Excerpts)
	require.Nil(t, req.Objective)

	opts = ParseExtract([]string{"https://a.example", "--objective", "pricing"})
	req = opts.Request()
	require.False(t, req.FullContent)
	require.True(t, req.Excerpts)
	require.Equal(t, "pricing", *req.Objective)
}

func TestParseSearch(t *testing.T) {
	opts, err := ParseSearch([]string{"--search-queries", "a, b ,c"})
	require.NoError(t, err)
	require.Nil(t, opts.Objective)
	require.Equal(t, []string{"a", "b", "c"}, opts.SearchQueries)
	require.NoError(t, opts.Validate())

	req := opts.Request()
	require.Equal(t, parallel.ModeAgentic, req.Mode)
	require.Equal(t, 5, req.MaxResults)
	require.Nil(t, req.Objective)
	require.Equal(t, []string{"a", "b", "c"}, req.SearchQueries)
}

func TestParseSearchObjectiveWins(t *testing.T) {
	opts, err := ParseSearch([]string{"stray", "--search-queries", "a,b", "--objective", "find papers"})
	require.NoError(t, err)

	req := opts.Request()
	require.Equal(t, "find papers", *req.Objective)
	require.Nil(t, req.SearchQueries)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"agentic","max_results":5,"objective":"find papers"}`, string(data))
}

func TestParseSearchValidation(t *testing.T) {
	opts, err := ParseSearch([]string{"just", "words"})
	require.NoError(t, err)
	requireKind(t, opts.Validate(), apperrors.KindMissingRequiredArgument)

	opts, err = ParseSearch([]string{"--objective", ""})
	require.NoError(t, err)
	requireKind(t, opts.Validate(), apperrors.KindMissingRequiredArgument)

	_, err = ParseSearch([]string{"--search-queries"})
	requireKind(t, err, apperrors.KindInvalidOptionValue)
}

func TestParseSearchEmptyObjectiveFallsBackToQueries(t *testing.T) {
	opts, err := ParseSearch([]string{"--objective", "", "--search-queries", "a,,b"})
	require.NoError(t, err)
	require.NoError(t, opts.Validate())

	req := opts.Request()
	require.Nil(t, req.Objective)
	require.Equal(t, []string{"a", "", "b"}, req.SearchQueries)
}

func TestParseQuery(t *testing.T) {
	opts, err := ParseQuery([]string{"hello", "world", "--mode", "advanced"})
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	require.Equal(t, "hello world", opts.Query)

	req := opts.Request()
	require.Equal(t, "hello world", req.Objective)
	require.Equal(t, parallel.ModeAgentic, req.Mode)
	require.Equal(t, DefaultQueryMaxResults, req.MaxResults)
}

func TestParseQueryDefaultsAndOverrides(t *testing.T) {
	opts, err := ParseQuery([]string{"golang", "--max", "3", "--objective", "official docs", "generics"})
	require.NoError(t, err)
	require.Equal(t, "golang generics", opts.Query)
	require.Equal(t, parallel.ModeOneShot, opts.Mode)
	require.Equal(t, 3, opts.MaxResults)

	req := opts.Request()
	require.Equal(t, "official docs", req.Objective)

	opts, err = ParseQuery([]string{"a", "--mode", "basic", "--unknown"})
	require.NoError(t, err)
	require.Equal(t, "a --unknown", opts.Query)
	require.Equal(t, parallel.ModeOneShot, opts.Mode)
}

func TestParseQueryInvalidValues(t *testing.T) {
	cases := [][]string{
		{"x", "--mode", "fast"},
		{"x", "--mode"},
		{"x", "--max", "ten"},
		{"x", "--max", "0"},
		{"x", "--max"},
	}

	for _, args := range cases {
		_, err := ParseQuery(args)
		requireKind(t, err, apperrors.KindInvalidOptionValue)
	}
}

func TestParseQueryValidation(t *testing.T) {
	opts, err := ParseQuery([]string{"--max", "4"})
	require.NoError(t, err)
	requireKind(t, opts.Validate(), apperrors.KindMissingRequiredArgument)

	opts, err = ParseQuery([]string{"--objective", "only an objective"})
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	require.Equal(t, "only an objective", opts.Request().Objective)
}

func TestRequestBuildersAreIdempotent(t *testing.T) {
	opts, err := ParseQuery([]string{"hello", "--mode", "advanced", "--max", "7"})
	require.NoError(t, err)

	first, err := json.Marshal(opts.Request())
	require.NoError(t, err)
	second, err := json.Marshal(opts.Request())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseSearchConsumesNextTokenUnconditionally(t *testing.T) {
	opts, err := ParseSearch([]string{"--objective", "--search-queries", "a,b"})
	require.NoError(t, err)
	require.Equal(t, "--search-queries", *opts.Objective)
	require.Nil(t, opts.SearchQueries)
	require.NoError(t, opts.Validate())

	data, err := json.Marshal(opts.Request())
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"agentic","max_results":5,"objective":"--search-queries"}`, string(data))

	opts, err = ParseSearch([]string{"--search-queries", "--objective"})
	require.NoError(t, err)
	require.Nil(t, opts.Objective)
	require.Equal(t, []string{"--objective"}, opts.SearchQueries)
}

func TestParseQueryConsumesNextTokenUnconditionally(t *testing.T) {
	opts, err := ParseQuery([]string{"x", "--objective", "--mode"})
	require.NoError(t, err)
	require.Equal(t, "x", opts.Query)
	require.Equal(t, "--mode", *opts.Objective)
	require.Equal(t, parallel.ModeOneShot, opts.Mode)
	require.Equal(t, "--mode", opts.Request().Objective)

	_, err = ParseQuery([]string{"x", "--mode", "--max", "3"})
	requireKind(t, err, apperrors.KindInvalidOptionValue)

	_, err = ParseQuery([]string{"x", "--max", "--objective"})
	requireKind(t, err, apperrors.KindInvalidOptionValue)
}
