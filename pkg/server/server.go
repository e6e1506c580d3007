// Package server provides the MCP server implementation for the maps-routes
// integration.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fitroutes/mapsmcp/pkg/config"
	"github.com/fitroutes/mapsmcp/pkg/fitness"
	"github.com/fitroutes/mapsmcp/pkg/gmaps"
	"github.com/fitroutes/mapsmcp/pkg/tools"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "maps-routes"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"
)

// Server encapsulates the MCP server with the maps-routes tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer wires the maps client, planner and tool registry from the
// resolved configuration and registers all tools.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := slog.Default()
	logger.Info("initializing maps-routes MCP server",
		"name", ServerName,
		"version", ServerVersion,
		"api_key_present", cfg.APIKey != "",
		"default_origin", cfg.DefaultOrigin)

	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	maps := gmaps.NewClient(cfg, gmaps.WithLogger(logger))
	planner := fitness.NewPlanner(maps, logger)

	registry := tools.NewRegistry(logger, planner, cfg.DefaultOrigin)
	registry.RegisterTools(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}
