package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Defaults applied when the corresponding variable is unset or empty.
// go-envconfig only substitutes struct-tag defaults for unset variables,
// so set-but-empty values are re-defaulted here.
const (
	defaultServerURL = "http://localhost:8080"
	defaultEnv       = "development"
	defaultLogLevel  = "info"
)

type Config struct {
	ServerURL   string `env:"SERVER_URL, default=http://localhost:8080"`
	Env         string `env:"ENV,        default=development"`
	LogLevel    string `env:"LOG_LEVEL,  default=info"`
	SessionFile string `env:"SESSION_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
// Trailing slashes on the server URL are stripped so path joining stays
// predictable; an empty URL falls back to the local default.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}

	cfg.ServerURL = strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return &cfg
}

// Development reports whether the process runs in a development env.
func (c *Config) Development() bool {
	return c.Env == "development"
}
