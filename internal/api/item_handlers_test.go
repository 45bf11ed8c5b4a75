package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minta-io/minta/internal/core"
)

func doJSON(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestItemCRUDRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	itemsURL := ts.URL + ItemsRoute

	// create
	resp := doJSON(t, http.MethodPost, itemsURL, ItemPayload{Name: "widget", Description: "a widget"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created core.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "widget", created.Name)

	itemURL := fmt.Sprintf("%s/%d", itemsURL, created.ID)

	// read
	resp = doJSON(t, http.MethodGet, itemURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched core.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)

	// update
	resp = doJSON(t, http.MethodPut, itemURL, ItemPayload{Name: "widget", Description: "updated"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated core.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "updated", updated.Description)

	// list
	resp = doJSON(t, http.MethodGet, itemsURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []core.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "updated", items[0].Description)

	// delete
	resp = doJSON(t, http.MethodDelete, itemURL, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// gone
	resp = doJSON(t, http.MethodGet, itemURL, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemEndpointErrors(t *testing.T) {
	ts := newTestServer(t)
	itemsURL := ts.URL + ItemsRoute

	tests := []struct {
		name       string
		method     string
		url        string
		payload    any
		wantStatus int
	}{
		{"get unknown item", http.MethodGet, itemsURL + "/999", nil, http.StatusNotFound},
		{"update unknown item", http.MethodPut, itemsURL + "/999", ItemPayload{Name: "x"}, http.StatusNotFound},
		{"delete unknown item", http.MethodDelete, itemsURL + "/999", nil, http.StatusNotFound},
		{"invalid id", http.MethodGet, itemsURL + "/abc", nil, http.StatusBadRequest},
		{"create without name", http.MethodPost, itemsURL, ItemPayload{Description: "no name"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, tt.method, tt.url, tt.payload)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHealthAndAbout(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + HealthCheckRoute)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + AboutRoute)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "Minta", info.Service)
	assert.NotEmpty(t, info.Version)
}
