package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minta-io/minta/internal/core"
)

const (
	KongType = "kong"

	// DefaultTimeout bounds the outbound credential lookup so a stalled
	// gateway cannot hang a token request indefinitely.
	DefaultTimeout = 10 * time.Second
)

var _ core.SecretResolver = (*KongResolver)(nil)

// KongResolver fetches per-consumer JWT credentials from the Kong admin API.
// Secrets are fetched fresh on every call and never cached, so a rotated
// credential takes effect on the next issuance.
type KongResolver struct {
	name         string
	adminBaseURL string
	httpClient   *http.Client
}

// KongConfig is the inline gateway configuration for the "kong" type.
type KongConfig struct {
	// AdminURL is the base URL of the Kong admin API, e.g. "http://kong:8001".
	AdminURL string `mapstructure:"admin_url"`

	// TimeoutSeconds bounds each credential lookup. Zero means the default.
	TimeoutSeconds int64 `mapstructure:"timeout_seconds"`
}

func NewKongResolver(name string, cfg KongConfig) (*KongResolver, error) {
	baseURL := strings.TrimRight(cfg.AdminURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("admin URL cannot be empty for %s gateway '%s'", KongType, name)
	}

	timeout := DefaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &KongResolver{
		name:         name,
		adminBaseURL: baseURL,
		httpClient:   &http.Client{Timeout: timeout},
	}, nil
}

func (r *KongResolver) Name() string {
	return r.name
}

// jwtCredentialList mirrors the Kong admin API response for
// GET /consumers/{consumer}/jwt.
type jwtCredentialList struct {
	Data []struct {
		Key    string `json:"key"`
		Secret string `json:"secret"`
	} `json:"data"`
}

// Resolve fetches the consumer's JWT credentials and returns the secret of
// the first one. A non-2xx answer surfaces as *core.UpstreamError carrying
// the gateway's status code; a 2xx answer without a usable secret surfaces
// as core.ErrNoCredentials.
func (r *KongResolver) Resolve(ctx context.Context, consumerID string) ([]byte, error) {
	if consumerID == "" {
		return nil, fmt.Errorf("consumer ID cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/consumers/%s/jwt", r.adminBaseURL, url.PathEscape(consumerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("request failed: %v", err),
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &core.UpstreamError{
			Status:  resp.StatusCode,
			Message: "failed to fetch credentials for consumer " + consumerID,
		}
	}

	var creds jwtCredentialList
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return nil, &core.UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("decoding response: %v", err),
		}
	}

	if len(creds.Data) == 0 || creds.Data[0].Secret == "" {
		return nil, core.ErrNoCredentials
	}
	return []byte(creds.Data[0].Secret), nil
}
