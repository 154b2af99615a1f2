package mcptools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/storage"
)

// CreateEventHandler returns the handler function for the create_event MCP tool.
func CreateEventHandler(store storage.Storage, logger *slog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input CreateEventInput) (*mcp.CallToolResult, EventResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateEventInput) (*mcp.CallToolResult, EventResult, error) {
		date, err := parseDate("date", input.Date)
		if err != nil {
			return nil, EventResult{}, err
		}

		var clock *event.Clock
		if s := strings.TrimSpace(input.Time); s != "" {
			c, err := event.ParseClock(s)
			if err != nil {
				return nil, EventResult{}, err
			}
			clock = &c
		}

		// Validates title and generates the ID.
		e, err := event.New(input.Title, date, clock, input.Description)
		if err != nil {
			return nil, EventResult{}, err
		}
		if err := store.Add(e); err != nil {
			return nil, EventResult{}, err
		}

		logger.Info("event created", "source", "mcp", "id", e.ID, "date", input.Date)
		return nil, toResult(e), nil
	}
}

// DeleteEventHandler returns the handler function for the delete_event MCP tool.
// Deleting an unknown ID is not an error; Deleted reports what happened.
func DeleteEventHandler(store storage.Storage, logger *slog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input DeleteEventInput) (*mcp.CallToolResult, DeleteEventOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteEventInput) (*mcp.CallToolResult, DeleteEventOutput, error) {
		deleted, err := store.Delete(input.ID)
		if err != nil {
			return nil, DeleteEventOutput{}, err
		}
		if deleted {
			logger.Info("event deleted", "source", "mcp", "id", input.ID)
		}
		return nil, DeleteEventOutput{ID: input.ID, Deleted: deleted}, nil
	}
}
