package testcfg

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds test-specific configuration for page client acceptance tests
type Config struct {
	PageURL     string        `env:"PAGEFETCH_TEST_URL" envDefault:"https://dexscreener.com/ethereum/0xdac17f958d2ee523a2206206994597c13d831ec7"`
	HTTPTimeout time.Duration `env:"PAGEFETCH_TEST_HTTP_TIMEOUT" envDefault:"30s"`
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
