package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/minta-io/minta/internal/api/presenter"
	"github.com/minta-io/minta/internal/service"
)

type GeneratePayload struct {
	// Issuer becomes the `iss` claim of the signed token.
	Issuer string `json:"iss"`

	// Claims are optional extra claims embedded into the token.
	Claims map[string]any `json:"claims,omitempty"`
}

// handleGenerateToken mints a signed token for the consumer named in the
// `consumer_id` query parameter.
func (s *Server) handleGenerateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	consumerID := r.URL.Query().Get("consumer_id")
	if consumerID == "" {
		logger.Warn().Msg("missing consumer_id parameter")
		presenter.Error(w, r, "missing consumer_id parameter", http.StatusBadRequest)
		return
	}

	var payload GeneratePayload
	if err := DecodePayload(r, &payload, false /* body required */); err != nil {
		logger.Warn().Err(err).Msg("failed to decode generate request payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := s.tokenService.GenerateToken(ctx, service.GenerateRequest{
		ConsumerID:  consumerID,
		Issuer:      payload.Issuer,
		ExtraClaims: payload.Claims,
	})
	if err != nil {
		logger.Error().Err(err).Msg("token generation failed")
		presenter.Err(w, r, err, "token generation failed")
		return
	}

	logger.Info().
		Str("consumer_id", consumerID).
		Str("iss", payload.Issuer).
		Msg("token generated successfully")

	presenter.JSON(w, r, result, http.StatusOK)
}
