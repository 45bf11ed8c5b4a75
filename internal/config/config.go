package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Token   TokenConfig   `yaml:"token"`
	Store   StoreConfig   `yaml:"store"`
}

// GatewayConfig holds configuration for the credential gateway used to
// resolve per-consumer signing secrets.
type GatewayConfig struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`    // e.g., "kong", "static"
	Config map[string]any `yaml:",inline"` // capture remaining fields
}

// TokenConfig holds the signing policy for issued tokens.
type TokenConfig struct {
	// Validity is the lifetime of issued tokens (e.g. "2m").
	// Zero means the built-in default.
	Validity time.Duration `yaml:"validity"`
}

// StoreConfig holds configuration for the item store.
type StoreConfig struct {
	Type   string         `yaml:"type"`    // e.g., "postgres", "memory"
	Config map[string]any `yaml:",inline"` // capture remaining fields
}

// Load reads and parses the configuration file at the given path.
// It returns a Config struct or an error if loading/parsing/validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Gateway.Type == "" {
		return fmt.Errorf("gateway type is required")
	}
	if c.Gateway.Name == "" {
		// a dedicated name is only interesting when running multiple
		// gateways side by side, default to the type
		c.Gateway.Name = c.Gateway.Type
	}
	if c.Token.Validity < 0 {
		return fmt.Errorf("token validity must not be negative")
	}
	if c.Store.Type == "" {
		c.Store.Type = "memory"
	}
	return nil
}
