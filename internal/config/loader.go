// Package config loads tool settings from the environment, with an optional
// YAML file, using viper and mapstructure.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

const (
	// EnvPrefix is prepended to every configuration key.
	EnvPrefix = "PARALLEL"

	// ConfigFileEnv names an optional YAML config file.
	ConfigFileEnv = "PARALLEL_CONFIG"
)

// keys lists every configuration key so viper resolves each one from the
// environment.
var keys = []string{"api_key", "base_url", "beta", "timeout", "output", "verbose", "trace"}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration through the given viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	setDefaults(v)

	if err := v.BindEnv("config_file", ConfigFileEnv); err != nil {
		return nil, fmt.Errorf("bind env for config file: %w", err)
	}
	if path := strings.TrimSpace(v.GetString("config_file")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	settings := make(map[string]any, len(keys))
	for _, key := range keys {
		settings[key] = v.Get(key)
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = parallel.DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Beta) == "" {
		cfg.Beta = parallel.DefaultBetaVersion
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s: must not be negative", cfg.Timeout)
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", parallel.DefaultBaseURL)
	v.SetDefault("beta", parallel.DefaultBetaVersion)
	v.SetDefault("timeout", "0s")
	v.SetDefault("output", "text")
	v.SetDefault("verbose", false)
	v.SetDefault("trace", "")
}
