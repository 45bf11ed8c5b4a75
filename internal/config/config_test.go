package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minta.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
gateway:
  name: main
  type: kong
  admin_url: http://kong:8001
  timeout_seconds: 5
token:
  validity: 2m
store:
  type: postgres
  dsn: postgres://minta@localhost/minta
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Gateway.Type != "kong" {
		t.Errorf("gateway type = %q, want kong", cfg.Gateway.Type)
	}
	if got := cfg.Gateway.Config["admin_url"]; got != "http://kong:8001" {
		t.Errorf("admin_url = %v, want http://kong:8001", got)
	}
	if cfg.Token.Validity != 2*time.Minute {
		t.Errorf("validity = %v, want 2m", cfg.Token.Validity)
	}
	if cfg.Store.Type != "postgres" {
		t.Errorf("store type = %q, want postgres", cfg.Store.Type)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
gateway:
  type: static
  secrets:
    consumer-1: s3cr3t
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Gateway.Name != "static" {
		t.Errorf("gateway name = %q, want default to type", cfg.Gateway.Name)
	}
	if cfg.Store.Type != "memory" {
		t.Errorf("store type = %q, want memory default", cfg.Store.Type)
	}
	if cfg.Token.Validity != 0 {
		t.Errorf("validity = %v, want zero (issuer default applies)", cfg.Token.Validity)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing gateway type", "token:\n  validity: 2m\n"},
		{"negative validity", "gateway:\n  type: static\ntoken:\n  validity: -1m\n"},
		{"malformed yaml", "gateway: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
