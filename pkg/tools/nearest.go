package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
)

// FindNearestTool returns the tool definition for nearest-place lookup.
func FindNearestTool() mcp.Tool {
	return mcp.NewTool("find_nearest",
		mcp.WithDescription("Find the nearest place of a specific type from a location"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting location (e.g., \"Chicago, IL\" or \"123 Main St, Chicago, IL\")"),
		),
		mcp.WithString("place_type",
			mcp.Required(),
			mcp.Description("Type of place to find (e.g., \"gym\", \"park\", \"restaurant\", \"hospital\", \"gas_station\")"),
		),
		mcp.WithNumber("radius_km",
			mcp.Description("Search radius in kilometers"),
			mcp.DefaultNumber(5.0),
		),
	)
}

// HandleFindNearest looks up the closest place of a type and renders the
// result, or the no-result advisory.
func (r *Registry) HandleFindNearest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger("find_nearest")

	res, err := r.planner.Nearest(ctx, fitness.NearestRequest{
		Origin:    mcp.ParseString(req, "origin", ""),
		PlaceType: mcp.ParseString(req, "place_type", ""),
		RadiusKm:  mcp.ParseFloat64(req, "radius_km", 5.0),
	})
	if err != nil {
		logger.Info("nearest lookup failed", "error", err)
		return planError("find_nearest", err), nil
	}

	return mcp.NewToolResultText(fitness.FormatNearest(res)), nil
}
