package service

// GenerateRequest describes one token-issuance call.
type GenerateRequest struct {
	// ConsumerID identifies the credential record at the gateway. Required.
	ConsumerID string

	// Issuer becomes the `iss` claim of the token. Required.
	Issuer string

	// ExtraClaims are embedded into the token as-is.
	ExtraClaims map[string]any
}

// GenerateResponse carries the signed token. The token is returned to the
// caller and not stored server-side.
type GenerateResponse struct {
	Token string `json:"token"`
}
