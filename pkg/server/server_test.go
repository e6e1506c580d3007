package server

import (
	"testing"

	"github.com/fitroutes/mapsmcp/pkg/config"
)

func TestNewServer(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey = "test-key"

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	if srv == nil || srv.srv == nil {
		t.Fatal("NewServer() returned incomplete server")
	}
}

func TestNewServerWithoutAPIKey(t *testing.T) {
	// A missing key degrades at request time, not at construction.
	srv, err := NewServer(config.Default())
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	if srv == nil {
		t.Fatal("NewServer() = nil")
	}
}
