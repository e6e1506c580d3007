package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fitroutes/mapsmcp/pkg/fitness"
	"github.com/fitroutes/mapsmcp/pkg/observability"
)

// ErrorResponse is used for consistent error reporting. Only descriptive
// text ever crosses the tool boundary; no structured error codes, no
// credentials.
func ErrorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// toolLogger returns a logger tagged with the tool name and a fresh request
// ID, and counts the invocation.
func (r *Registry) toolLogger(tool string) *slog.Logger {
	observability.RecordToolRequest(tool)
	return r.logger.With("tool", tool, "request_id", uuid.NewString())
}

// planError renders a planner failure as the tool's error text. Validation
// failures read "Error: ..."; anything else came from the directions
// provider and keeps the original phrasing.
func planError(tool string, err error) *mcp.CallToolResult {
	observability.RecordToolError(tool)

	var ve *fitness.ValidationError
	if errors.As(err, &ve) {
		return ErrorResponse(fmt.Sprintf("Error: %s", ve.Message))
	}
	return ErrorResponse(fmt.Sprintf("Error getting directions: %v", err))
}
