package gateway

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/minta-io/minta/internal/config"
	"github.com/minta-io/minta/internal/core"
)

// Build constructs the secret resolver described by the gateway config.
func Build(cfg config.GatewayConfig) (core.SecretResolver, error) {
	switch cfg.Type {
	case KongType:
		var kongCfg KongConfig
		if err := mapstructure.Decode(cfg.Config, &kongCfg); err != nil {
			return nil, fmt.Errorf("decoding config for %s gateway %q: %w", cfg.Type, cfg.Name, err)
		}
		return NewKongResolver(cfg.Name, kongCfg)
	case StaticType:
		var staticCfg StaticConfig
		if err := mapstructure.Decode(cfg.Config, &staticCfg); err != nil {
			return nil, fmt.Errorf("decoding config for %s gateway %q: %w", cfg.Type, cfg.Name, err)
		}
		return NewStaticResolver(cfg.Name, staticCfg), nil
	default:
		return nil, fmt.Errorf("unknown gateway type %q for gateway %q", cfg.Type, cfg.Name)
	}
}
