package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
)

// GetRouteTool returns the tool definition for plain directions.
func GetRouteTool() mcp.Tool {
	return mcp.NewTool("get_route",
		mcp.WithDescription("Get directions between two locations. If no destination is provided, creates a loop route starting and ending at origin."),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting location (e.g., \"Chicago, IL\", \"123 Main St, Chicago, IL\", or \"current location\")"),
		),
		mcp.WithString("destination",
			mcp.Description("Optional ending location. If omitted, the route loops back to origin."),
		),
		mcp.WithString("mode",
			mcp.Description("Transportation mode (walking, bicycling, driving, transit)"),
			mcp.DefaultString("driving"),
		),
	)
}

// HandleGetRoute requests directions and renders the route report.
func (r *Registry) HandleGetRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger("get_route")

	route, err := r.planner.Route(ctx, fitness.RouteRequest{
		Origin:      mcp.ParseString(req, "origin", ""),
		Destination: mcp.ParseString(req, "destination", ""),
		Mode:        mcp.ParseString(req, "mode", "driving"),
	})
	if err != nil {
		logger.Info("route request failed", "error", err)
		return planError("get_route", err), nil
	}

	return mcp.NewToolResultText(fitness.FormatRoute(route)), nil
}
