package client

import (
	"context"

	"github.com/minta-io/minta/internal/api"
)

// GenerateTokenOptions contains optional parameters for token generation.
type GenerateTokenOptions struct {
	// ExtraClaims are embedded into the token in addition to `iss`.
	ExtraClaims map[string]any
}

// GenerateToken requests a signed token for the given consumer.
// The issuer value becomes the `iss` claim of the token.
func (c *Client) GenerateToken(
	ctx context.Context,
	consumerID, issuer string,
	opts GenerateTokenOptions,
) (string, string, error) {
	payload := api.GeneratePayload{
		Issuer: issuer,
		Claims: opts.ExtraClaims,
	}

	var result struct {
		Token string `json:"token"`
	}
	correlation, err := c.post(ctx, c.url().
		setPath(api.GenerateTokenRoute).
		addQueryParam("consumer_id", consumerID).
		build(), payload, &result)
	if err != nil {
		return "", correlation, err
	}
	return result.Token, correlation, nil
}
