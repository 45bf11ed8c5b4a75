package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minta-io/minta/internal/core"
)

var testSecret = []byte("s3cr3t")

func decode(t *testing.T, signed string, secret []byte) jwt.MapClaims {
	t.Helper()

	// expiry is asserted explicitly per test, some fixtures mint in the past
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	tok, err := parser.Parse(signed, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if !tok.Valid {
		t.Fatal("token signature invalid")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	return claims
}

func TestSignPreservesIssuerAndBoundsExpiry(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer(2 * time.Minute)
	iss.now = func() time.Time { return now }

	signed, err := iss.Sign(core.Claims{Issuer: "service-a"}, testSecret)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims := decode(t, signed, testSecret)
	if got := claims["iss"]; got != "service-a" {
		t.Errorf("iss = %v, want service-a", got)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("reading exp: %v", err)
	}
	if !exp.Time.After(now) {
		t.Errorf("exp %v not after issuance time %v", exp.Time, now)
	}
	if want := now.Add(2 * time.Minute); !exp.Time.Equal(want) {
		t.Errorf("exp = %v, want %v", exp.Time, want)
	}
}

func TestExpiryCeilingInstant(t *testing.T) {
	want := time.Date(2038, time.January, 19, 3, 14, 7, 0, time.UTC)
	if !maxExpiry.Equal(want) {
		t.Fatalf("ceiling = %v, want %v", maxExpiry, want)
	}
}

func TestSignClampsExpiryToCeiling(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		validity time.Duration
		want     time.Time
	}{
		{
			name:     "window crosses ceiling",
			now:      maxExpiry.Add(-time.Minute),
			validity: 2 * time.Minute,
			want:     maxExpiry,
		},
		{
			name:     "huge validity window",
			now:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			validity: 100 * 365 * 24 * time.Hour,
			want:     maxExpiry,
		},
		{
			name:     "window ends exactly at ceiling",
			now:      maxExpiry.Add(-2 * time.Minute),
			validity: 2 * time.Minute,
			want:     maxExpiry,
		},
		{
			name:     "window well below ceiling",
			now:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			validity: 5 * time.Minute,
			want:     time.Date(2025, time.January, 1, 0, 5, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := NewIssuer(tt.validity)
			iss.now = func() time.Time { return tt.now }

			signed, err := iss.Sign(core.Claims{Issuer: "svc"}, testSecret)
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}

			exp, err := decode(t, signed, testSecret).GetExpirationTime()
			if err != nil {
				t.Fatalf("reading exp: %v", err)
			}
			if !exp.Time.Equal(tt.want) {
				t.Errorf("exp = %v, want %v", exp.Time, tt.want)
			}
		})
	}
}

func TestSignKeepsExtraClaims(t *testing.T) {
	iss := NewIssuer(time.Minute)

	signed, err := iss.Sign(core.Claims{
		Issuer: "service-a",
		Extra: map[string]any{
			"sub":   "user-1",
			"scope": "read",
			// reserved claims must not be overridable
			"iss": "evil",
			"exp": 1,
		},
	}, testSecret)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims := decode(t, signed, testSecret)
	if got := claims["sub"]; got != "user-1" {
		t.Errorf("sub = %v, want user-1", got)
	}
	if got := claims["scope"]; got != "read" {
		t.Errorf("scope = %v, want read", got)
	}
	if got := claims["iss"]; got != "service-a" {
		t.Errorf("iss = %v, want service-a (override must be ignored)", got)
	}
	if exp, _ := claims.GetExpirationTime(); !exp.Time.After(time.Now()) {
		t.Errorf("exp override was not ignored: %v", exp.Time)
	}
}

func TestSignRejectsNonSerializableClaims(t *testing.T) {
	iss := NewIssuer(time.Minute)

	_, err := iss.Sign(core.Claims{
		Issuer: "service-a",
		Extra:  map[string]any{"ch": make(chan int)},
	}, testSecret)

	var encErr *core.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *core.EncodingError", err)
	}
}

func TestSignRejectsWrongSecretOnVerify(t *testing.T) {
	iss := NewIssuer(time.Minute)

	signed, err := iss.Sign(core.Claims{Issuer: "service-a"}, testSecret)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}
