package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/minta-io/minta/internal/core"
	"github.com/minta-io/minta/internal/token"
)

// TokenService handles the issuance flow: resolve the consumer's signing
// secret at the gateway, then mint a time-bounded signed token with it.
// Secrets live only for the duration of one call.
type TokenService struct {
	resolver core.SecretResolver
	issuer   *token.Issuer
}

func NewTokenService(resolver core.SecretResolver, issuer *token.Issuer) *TokenService {
	return &TokenService{
		resolver: resolver,
		issuer:   issuer,
	}
}

func (s *TokenService) GenerateToken(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	logger := log.Ctx(ctx)

	if req.ConsumerID == "" {
		return nil, httpError(http.StatusBadRequest,
			fmt.Errorf("consumer ID is required"))
	}
	if req.Issuer == "" {
		return nil, httpError(http.StatusBadRequest,
			fmt.Errorf("issuer claim is required"))
	}

	secret, err := s.resolver.Resolve(ctx, req.ConsumerID)
	if err != nil {
		var upstream *core.UpstreamError
		switch {
		case errors.Is(err, core.ErrNoCredentials):
			return nil, httpError(http.StatusNotFound,
				fmt.Errorf("no credentials found for consumer '%s'", req.ConsumerID))
		case errors.As(err, &upstream):
			return nil, httpError(upstream.Status,
				fmt.Errorf("resolving secret: %w", err))
		default:
			return nil, httpError(http.StatusBadGateway,
				fmt.Errorf("resolving secret: %w", err))
		}
	}

	logger.Debug().
		Str("gateway", s.resolver.Name()).
		Str("consumer_id", req.ConsumerID).
		Msg("secret resolved")

	signed, err := s.issuer.Sign(core.Claims{
		Issuer: req.Issuer,
		Extra:  req.ExtraClaims,
	}, secret)
	if err != nil {
		var encErr *core.EncodingError
		if errors.As(err, &encErr) {
			return nil, httpError(http.StatusBadRequest,
				fmt.Errorf("signing token: %w", err))
		}
		return nil, httpError(http.StatusInternalServerError,
			fmt.Errorf("signing token: %w", err))
	}

	return &GenerateResponse{Token: signed}, nil
}
