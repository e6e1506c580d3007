package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
)

// GetFitnessRouteTool returns the tool definition for fitness route planning.
func GetFitnessRouteTool() mcp.Tool {
	return mcp.NewTool("get_fitness_route",
		mcp.WithDescription("Get a route that will help burn a specific number of calories. If no destination is provided, creates a loop route starting and ending at origin."),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting location (e.g., \"Chicago, IL\", \"123 Main St, Chicago, IL\", or \"current location\")"),
		),
		mcp.WithNumber("target_calories",
			mcp.Required(),
			mcp.Description("Number of calories to burn"),
		),
		mcp.WithString("destination",
			mcp.Description("Optional ending location. If omitted, the route loops back to origin."),
		),
		mcp.WithString("mode",
			mcp.Description("Transportation mode (walking, bicycling, driving, transit)"),
			mcp.DefaultString("walking"),
		),
	)
}

// HandleGetFitnessRoute plans a calorie-targeted route and renders the
// fitness report.
func (r *Registry) HandleGetFitnessRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger("get_fitness_route")

	plan, err := r.planner.Plan(ctx, fitness.PlanRequest{
		Origin:         mcp.ParseString(req, "origin", ""),
		Destination:    mcp.ParseString(req, "destination", ""),
		TargetCalories: int(mcp.ParseFloat64(req, "target_calories", 0)),
		Mode:           mcp.ParseString(req, "mode", "walking"),
	})
	if err != nil {
		logger.Info("fitness plan failed", "error", err)
		return planError("get_fitness_route", err), nil
	}

	return mcp.NewToolResultText(fitness.FormatFitnessPlan(plan)), nil
}
