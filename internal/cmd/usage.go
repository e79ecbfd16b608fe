package cmd

const extractUsage = `Usage: parallel-extract <url1> [url2...] [--objective <text>]

Extract content from web pages.

Arguments:
  url1 url2...             One or more URLs to extract (required)
  --objective TEXT         Optional: guide what to extract
                           If omitted: returns full content
                           If provided: returns relevant excerpts only

Examples:
  parallel-extract "https://example.com"
  parallel-extract "https://url1.com" "https://url2.com"
  parallel-extract "https://example.com" --objective "extract pricing info"
`

const searchUsage = `Usage: parallel-search --objective <text>
   or: parallel-search --search-queries <q1,q2>

Search Strategy (choose one):
  --objective TEXT         Natural language: what to find, guidance on sources/freshness
                           (RECOMMENDED - Parallel AI prefers context)
  --search-queries Q1,Q2   Keyword queries with operators for technical precision

Examples:
  parallel-search --objective "latest AI breakthroughs in 2024, prefer research papers"
  parallel-search --search-queries "SvelteKit +SSR +performance","svelte ssr benchmark"
`

const queryUsage = `Usage: parallel-query <query words...> [--mode basic|advanced] [--objective <text>] [--max <n>]

Search the web for a query.

Arguments:
  query words...           Words joined with spaces into the search text
  --mode MODE              basic (one-shot, default) or advanced (agentic)
  --objective TEXT         Optional: natural-language objective sent instead of the query text
  --max N                  Maximum number of results (default 10)

Examples:
  parallel-query golang generics tutorial
  parallel-query "rust async runtimes" --mode advanced --max 5
  parallel-query sveltekit --objective "SvelteKit SSR performance benchmarks, prefer 2024 posts"
`
