package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendPostgres = "postgres"
	BackendRoster   = "roster"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AdminToken guards the /admin surface; exact-match header check.
	AdminToken string `env:"ADMIN_TOKEN"`

	// AllowedIPs restricts /check to known origin addresses. Empty
	// means unrestricted.
	AllowedIPs []string `env:"ALLOWED_IPS"`

	// UserBackend selects the directory variant: postgres or roster.
	UserBackend string `env:"USER_BACKEND, default=postgres"`
	RosterPath  string `env:"ROSTER_PATH,  default=bolsistas.txt"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

// Load reads configuration from environment variables using
// go-envconfig and validates the settings the process cannot run
// without. Any failure here is fatal: there is no degraded mode.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.AdminToken == "" {
		return fmt.Errorf("ADMIN_TOKEN is required")
	}
	if c.UserBackend != BackendPostgres && c.UserBackend != BackendRoster {
		return fmt.Errorf("USER_BACKEND must be %q or %q, got %q", BackendPostgres, BackendRoster, c.UserBackend)
	}
	return nil
}
