// Package tools provides the maps-routes MCP tool implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
)

// Registry holds all MCP tool registrations for the maps-routes service.
// The planner and default origin are injected at construction; handlers
// never reach into the environment.
type Registry struct {
	logger        *slog.Logger
	planner       *fitness.Planner
	defaultOrigin string
}

// NewRegistry creates a new MCP tool registry.
func NewRegistry(logger *slog.Logger, planner *fitness.Planner, defaultOrigin string) *Registry {
	return &Registry{
		logger:        logger,
		planner:       planner,
		defaultOrigin: defaultOrigin,
	}
}

// ToolDefinition represents one maps-routes MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all maps-routes MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "get_fitness_route",
			Description: "Get a route that will help burn a specific number of calories",
			Tool:        GetFitnessRouteTool(),
			Handler:     r.HandleGetFitnessRoute,
		},
		{
			Name:        "get_route",
			Description: "Get directions between two locations",
			Tool:        GetRouteTool(),
			Handler:     r.HandleGetRoute,
		},
		{
			Name:        "find_nearest",
			Description: "Find the nearest place of a specific type from a location",
			Tool:        FindNearestTool(),
			Handler:     r.HandleFindNearest,
		},
		{
			Name:        "query_route",
			Description: "Process a natural language query about routes or directions",
			Tool:        QueryRouteTool(),
			Handler:     r.HandleQueryRoute,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
