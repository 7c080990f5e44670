package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/screwyprof/tokenscout/pkg/pagefetch"
	"github.com/screwyprof/tokenscout/pkg/ratelimit"
)

// Config holds all configuration loaded from environment variables
type Config struct {
	HTTPPort         string        `env:"PORT" envDefault:"3000"`
	HTTPHost         string        `env:"HTTP_HOST" envDefault:""`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogHumanFriendly bool          `env:"LOG_HUMAN_FRIENDLY" envDefault:"false"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Lookup    Lookup
	RateLimit RateLimit
	CORS      CORS
}

// Lookup configures how sources are fetched
type Lookup struct {
	FetchTimeout time.Duration `env:"LOOKUP_FETCH_TIMEOUT"`
	UserAgent    string        `env:"LOOKUP_USER_AGENT"`
	MaxBodyBytes int64         `env:"LOOKUP_MAX_BODY_BYTES"`
	SourcesFile  string        `env:"LOOKUP_SOURCES_FILE"` // empty means the built-in catalog
}

// RateLimit configures the per-client request budget; zero disables it
type RateLimit struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// defaults are shared with the packages that own them
func defaults() Config {
	return Config{
		Lookup: Lookup{
			FetchTimeout: pagefetch.DefaultTimeout,
			UserAgent:    pagefetch.DefaultUserAgent,
			MaxBodyBytes: pagefetch.DefaultMaxBodyBytes,
		},
		RateLimit: RateLimit{
			Requests: ratelimit.DefaultRequests,
			Window:   ratelimit.DefaultWindow,
		},
	}
}

// Parse loads configuration from environment variables
func Parse() (Config, error) {
	cfg := defaults()
	err := env.Parse(&cfg)
	return cfg, err
}

// New loads all configuration from environment variables
func New() Config {
	return env.Must(Parse())
}
