package token

import (
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minta-io/minta/internal/core"
)

// DefaultValidity is the validity window applied when none is configured.
const DefaultValidity = 2 * time.Minute

// maxExpiry is the hard ceiling for the `exp` claim: the largest instant
// representable as a signed 32-bit epoch timestamp (2038-01-19T03:14:07Z).
// Tokens never outlive it, regardless of the configured validity window.
var maxExpiry = time.Unix(math.MaxInt32, 0).UTC()

// Issuer mints HS256-signed tokens with a fixed validity window.
// Signing is stateless; given the same claims, secret and clock instant the
// result is deterministic.
type Issuer struct {
	validity time.Duration

	// now is swapped out in tests.
	now func() time.Time
}

func NewIssuer(validity time.Duration) *Issuer {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Issuer{
		validity: validity,
		now:      time.Now,
	}
}

// Validity returns the configured validity window.
func (i *Issuer) Validity() time.Duration {
	return i.validity
}

// Sign encodes the claims into a compact HS256 token signed with secret.
// The `exp` claim is set to now+validity, clamped to maxExpiry. Any `iss` or
// `exp` entries in Claims.Extra are ignored.
func (i *Issuer) Sign(claims core.Claims, secret []byte) (string, error) {
	expiry := i.now().UTC().Add(i.validity)
	if expiry.After(maxExpiry) {
		expiry = maxExpiry
	}

	payload := make(jwt.MapClaims, len(claims.Extra)+2)
	for k, v := range claims.Extra {
		if k == "iss" || k == "exp" {
			continue
		}
		payload[k] = v
	}
	payload["iss"] = claims.Issuer
	payload["exp"] = jwt.NewNumericDate(expiry)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return "", &core.EncodingError{Err: err}
	}
	return signed, nil
}
