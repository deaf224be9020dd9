package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Client defaults.
const (
	DefaultClientServerURL = "http://localhost:3000"
	DefaultClientTimeout   = 15 * time.Second
	DefaultClientLogLevel  = "warn"
)

// ErrInvalidClientConfigs indicates missing admin credentials for the admin
// client.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the tablectl admin client.
type ClientConfig struct {
	// ServerURL is the origin of the table-ordering server.
	// Env: TABLECTL_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Username and Password are the admin credentials.
	// Env: TABLECTL_USERNAME, TABLECTL_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// Timeout bounds every request.
	// Env: TABLECTL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: TABLECTL_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig merges TABLECTL_* environment variables (and .env) with
// flags from args; flags win. It returns the remaining positional args.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TABLECTL_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	if err = mergo.Merge(cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

func (c *ClientConfig) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultClientServerURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultClientTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultClientLogLevel
	}
}

func (c *ClientConfig) validate() error {
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidClientConfigs)
	}
	return nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("tablectl", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.ServerURL, "s", "", "Server URL (e.g., http://localhost:3000)")
	fs.StringVar(&cfg.Username, "u", "", "Admin username")
	fs.StringVar(&cfg.Password, "p", "", "Admin password")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
