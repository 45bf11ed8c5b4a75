package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minta-io/minta/internal/gateway"
	"github.com/minta-io/minta/internal/store"
	"github.com/minta-io/minta/internal/token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	resolver := gateway.NewStaticResolver("static", gateway.StaticConfig{
		Secrets: map[string]string{"consumer-1": "s3cr3t"},
	})
	srv := NewServer(resolver, token.NewIssuer(2*time.Minute), store.NewInMemoryItemStore())

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestGenerateTokenEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(
		ts.URL+GenerateTokenRoute+"?consumer_id=consumer-1",
		"application/json",
		strings.NewReader(`{"iss":"service-a"}`),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Correlation-ID"); got == "" {
		t.Error("missing correlation ID header")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Token == "" {
		t.Fatal("empty token in response")
	}

	tok, err := jwt.Parse(body.Token, func(*jwt.Token) (any, error) {
		return []byte("s3cr3t"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("decoding issued token: valid=%v err=%v", tok.Valid, err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if got := claims["iss"]; got != "service-a" {
		t.Errorf("iss = %v, want service-a", got)
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("issued token missing exp claim")
	}
}

func TestGenerateTokenEndpointErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
	}{
		{"missing consumer_id", "", `{"iss":"service-a"}`, http.StatusBadRequest},
		{"missing issuer claim", "?consumer_id=consumer-1", `{}`, http.StatusBadRequest},
		{"empty body", "?consumer_id=consumer-1", ``, http.StatusBadRequest},
		{"unknown payload field", "?consumer_id=consumer-1", `{"iss":"a","nope":1}`, http.StatusBadRequest},
		{"unregistered consumer", "?consumer_id=ghost", `{"iss":"service-a"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(
				ts.URL+GenerateTokenRoute+tt.query,
				"application/json",
				strings.NewReader(tt.body),
			)
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body struct {
				Error         string `json:"error"`
				CorrelationID string `json:"correlation_id"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error response: %v", err)
			}
			if body.Error == "" {
				t.Error("error response without message")
			}
			if body.CorrelationID == "" {
				t.Error("error response without correlation ID")
			}
		})
	}
}

// TestGenerateTokenEndpointUpstreamStatus wires the real Kong resolver
// against a fake admin API to check that upstream failures keep their status.
func TestGenerateTokenEndpointUpstreamStatus(t *testing.T) {
	admin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(admin.Close)

	resolver, err := gateway.NewKongResolver("kong", gateway.KongConfig{AdminURL: admin.URL})
	if err != nil {
		t.Fatalf("NewKongResolver: %v", err)
	}
	srv := NewServer(resolver, token.NewIssuer(2*time.Minute), store.NewInMemoryItemStore())

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	resp, err := http.Post(
		ts.URL+GenerateTokenRoute+"?consumer_id=ghost",
		"application/json",
		strings.NewReader(`{"iss":"service-a"}`),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want upstream 404 propagated", resp.StatusCode)
	}
}
