package gateway

import (
	"context"

	"github.com/minta-io/minta/internal/core"
)

const StaticType = "static"

var _ core.SecretResolver = (*StaticResolver)(nil)

// StaticResolver serves signing secrets straight from the configuration.
// Intended for local development and tests; there is no external gateway
// involved, so lookups never fail with an upstream error.
type StaticResolver struct {
	name    string
	secrets map[string]string // consumer ID -> secret
}

// StaticConfig is the inline gateway configuration for the "static" type.
type StaticConfig struct {
	Secrets map[string]string `mapstructure:"secrets"`
}

func NewStaticResolver(name string, cfg StaticConfig) *StaticResolver {
	secrets := cfg.Secrets
	if secrets == nil {
		// an empty map simply fails every lookup
		secrets = make(map[string]string)
	}
	return &StaticResolver{
		name:    name,
		secrets: secrets,
	}
}

func (r *StaticResolver) Name() string {
	return r.name
}

func (r *StaticResolver) Resolve(_ context.Context, consumerID string) ([]byte, error) {
	secret, ok := r.secrets[consumerID]
	if !ok || secret == "" {
		return nil, core.ErrNoCredentials
	}
	return []byte(secret), nil
}
