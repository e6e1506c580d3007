package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
)

// QueryRouteTool returns the tool definition for free-text queries.
func QueryRouteTool() mcp.Tool {
	return mcp.NewTool("query_route",
		mcp.WithDescription("Process a natural language query about routes or directions, such as fitness routes (burn calories) or regular directions"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language query (e.g., \"burn 300 calories near me\")"),
		),
	)
}

// HandleQueryRoute classifies a free-text query and dispatches to the
// fitness planner or the plain route path, using the configured default
// origin and a loop route.
func (r *Registry) HandleQueryRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.toolLogger("query_route")

	query := mcp.ParseString(req, "query", "")
	intent := fitness.DetectIntent(query)
	logger.Debug("query classified", "intent", intent.String())

	switch intent {
	case fitness.IntentFitnessRoute:
		calories, ok := fitness.ExtractCalories(query)
		if !ok {
			return ErrorResponse("Error: Could not find calorie amount in query. Please include something like 'burn 300 calories'."), nil
		}
		plan, err := r.planner.Plan(ctx, fitness.PlanRequest{
			Origin:         r.defaultOrigin,
			TargetCalories: calories,
			Mode:           fitness.ModeWalking,
		})
		if err != nil {
			logger.Info("fitness plan failed", "error", err)
			return planError("query_route", err), nil
		}
		return mcp.NewToolResultText(fitness.FormatFitnessPlan(plan)), nil

	case fitness.IntentDirections:
		route, err := r.planner.Route(ctx, fitness.RouteRequest{
			Origin: r.defaultOrigin,
			Mode:   fitness.ModeDriving,
		})
		if err != nil {
			logger.Info("route request failed", "error", err)
			return planError("query_route", err), nil
		}
		return mcp.NewToolResultText(fitness.FormatRoute(route)), nil

	default:
		return mcp.NewToolResultText(fmt.Sprintf("Could not understand query intent. Detected: %s. Please be more specific about what you need.", intent)), nil
	}
}
