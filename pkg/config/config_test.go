package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.DefaultOrigin != "Chicago, IL" {
		t.Errorf("DefaultOrigin = %q", cfg.DefaultOrigin)
	}
	if cfg.ValidateTimeout != 5*time.Second {
		t.Errorf("ValidateTimeout = %v", cfg.ValidateTimeout)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.GeocodeLimit.RequestsPerSecond <= 0 || cfg.GeocodeLimit.Burst <= 0 {
		t.Errorf("GeocodeLimit = %+v, want positive defaults", cfg.GeocodeLimit)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
api_key: file-key
default_origin: Portland, OR
request_timeout: 20s
directions_limit:
  requests_per_second: 2
  burst: 1
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDefaultOrigin, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.DefaultOrigin != "Portland, OR" {
		t.Errorf("DefaultOrigin = %q", cfg.DefaultOrigin)
	}
	if cfg.RequestTimeout != 20*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.DirectionsLimit.RequestsPerSecond != 2 {
		t.Errorf("DirectionsLimit = %+v", cfg.DirectionsLimit)
	}
	// Values the file leaves out fall back to defaults.
	if cfg.ValidateTimeout != 5*time.Second {
		t.Errorf("ValidateTimeout = %v, want default", cfg.ValidateTimeout)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: file-key\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvDefaultOrigin, "Seattle, WA")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env value", cfg.APIKey)
	}
	if cfg.DefaultOrigin != "Seattle, WA" {
		t.Errorf("DefaultOrigin = %q, want env value", cfg.DefaultOrigin)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file succeeded, want error")
	}
}

func TestLoadNoFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvDefaultOrigin, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.DefaultOrigin != "Chicago, IL" {
		t.Errorf("DefaultOrigin = %q, want default", cfg.DefaultOrigin)
	}
}
