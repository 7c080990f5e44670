package testcfg

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds test-specific configuration for web API acceptance tests
type Config struct {
	LogLevel         string        `env:"LOOKUP_TEST_LOG_LEVEL" envDefault:"info"`
	LogHumanFriendly bool          `env:"LOOKUP_TEST_LOG_HUMAN_FRIENDLY" envDefault:"true"`
	Contract         string        `env:"LOOKUP_TEST_CONTRACT" envDefault:"0xdAC17F958D2ee523a2206206994597C13D831ec7"`
	FetchTimeout     time.Duration `env:"LOOKUP_TEST_FETCH_TIMEOUT" envDefault:"10s"`
}

// parseConfig wraps env.Parse to return (Config, error) for use with env.Must
func parseConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}

// New loads test configuration from environment variables
func New() Config {
	return env.Must(parseConfig())
}
