// Package config loads sift's runtime configuration: which directory of
// documents to search, default result windowing, and where the HTTP server
// binds. Precedence follows viper's usual order: explicit flag > environment
// variable (SIFT_ prefix) > config file > default.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration for any sift command.
type Config struct {
	DataDir      string
	DefaultLimit int
	Offset       int
	HTTPAddr     string
	LogLevel     string
}

// Load resolves configuration from defaults, an optional file at path (if
// non-empty), and environment variables prefixed SIFT_, each overriding the
// one before. Flags are not read here; callers apply explicitly set flag
// values on top of the returned Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("sift")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", "./data")
	v.SetDefault("default_limit", 10)
	v.SetDefault("offset", 0)
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		DataDir:      v.GetString("data_dir"),
		DefaultLimit: v.GetInt("default_limit"),
		Offset:       v.GetInt("offset"),
		HTTPAddr:     v.GetString("http_addr"),
		LogLevel:     v.GetString("log_level"),
	}, nil
}
