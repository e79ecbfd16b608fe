package config

import "time"

// Config holds the settings shared by the three tools.
//
// Every key can be set through a PARALLEL_-prefixed environment variable
// (api_key -> PARALLEL_API_KEY). A YAML file named by PARALLEL_CONFIG is read
// first when present; the environment wins over it.
type Config struct {
	// APIKey is sent in the x-api-key header. Required.
	APIKey string `mapstructure:"api_key"`

	// BaseURL is the API host the endpoint paths are appended to.
	BaseURL string `mapstructure:"base_url"`

	// Beta is the value of the parallel-beta header.
	Beta string `mapstructure:"beta"`

	// Timeout bounds each API call. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// Output selects the renderer: text, json, table or markdown.
	Output string `mapstructure:"output"`

	// Verbose enables debug logging on stderr.
	Verbose bool `mapstructure:"verbose"`

	// Trace names an NDJSON file receiving one entry per API call.
	Trace string `mapstructure:"trace"`
}
