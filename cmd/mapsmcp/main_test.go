package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateClientConfig(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "claude_desktop_config.json")
	if err := generateClientConfig(path); err != nil {
		t.Fatalf("generateClientConfig() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Failed to parse config JSON: %v", err)
	}

	mcpServers, ok := cfg["mcpServers"].(map[string]interface{})
	if !ok {
		t.Fatal("Config missing 'mcpServers' section")
	}
	srv, ok := mcpServers["maps-routes"].(map[string]interface{})
	if !ok {
		t.Fatal("Config missing 'maps-routes' server entry")
	}
	if cmd, _ := srv["command"].(string); cmd == "" {
		t.Error("Server entry missing command")
	}
}

func TestGenerateClientConfigMerge(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	existing := map[string]interface{}{
		"existing_key": "existing_value",
		"mcpServers": map[string]interface{}{
			"other-server": map[string]interface{}{"command": "/usr/bin/other"},
		},
	}
	data, err := json.Marshal(existing)
	if err != nil {
		t.Fatalf("Failed to marshal existing config: %v", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write existing config: %v", err)
	}

	if err := generateClientConfig(path); err != nil {
		t.Fatalf("generateClientConfig() error: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	var cfg map[string]interface{}
	if err := json.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("Failed to parse config JSON: %v", err)
	}

	if val, ok := cfg["existing_key"]; !ok || val != "existing_value" {
		t.Error("Merge failed to preserve existing content")
	}
	mcpServers, ok := cfg["mcpServers"].(map[string]interface{})
	if !ok {
		t.Fatal("Config missing 'mcpServers' section")
	}
	if _, ok := mcpServers["other-server"]; !ok {
		t.Error("Merge failed to preserve existing server entry")
	}
	if _, ok := mcpServers["maps-routes"]; !ok {
		t.Error("Config missing 'maps-routes' server entry")
	}
}

func TestGenerateClientConfigInvalidExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("Failed to write existing config: %v", err)
	}

	// Corrupt existing content is replaced rather than failing.
	if err := generateClientConfig(path); err != nil {
		t.Fatalf("generateClientConfig() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Failed to parse config JSON: %v", err)
	}
	if _, ok := cfg["mcpServers"]; !ok {
		t.Error("Config missing 'mcpServers' section")
	}
}
