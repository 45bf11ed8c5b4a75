package core

// Claims is the payload of a token to be signed.
type Claims struct {
	// Issuer becomes the `iss` claim of the signed token.
	Issuer string

	// Extra are additional claims embedded as-is.
	// The `iss` and `exp` claims are controlled by the signer and cannot be
	// overridden through Extra.
	Extra map[string]any
}

// Item is the record type served by the CRUD endpoints.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
