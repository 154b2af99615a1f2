package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/storage"
)

// ListEventsHandler returns the handler function for the list_events MCP tool.
func ListEventsHandler(store storage.Storage, now func() time.Time) func(ctx context.Context, req *mcp.CallToolRequest, input ListEventsInput) (*mcp.CallToolResult, EventsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListEventsInput) (*mcp.CallToolResult, EventsOutput, error) {
		if input.All {
			return nil, EventsOutput{Events: toResults(store.All())}, nil
		}

		from := calendar.Today(now())
		if input.From != "" {
			d, err := parseDate("from", input.From)
			if err != nil {
				return nil, EventsOutput{}, err
			}
			from = d
		}
		days := input.Days
		if days <= 0 {
			days = storage.DefaultUpcomingDays
		}

		return nil, EventsOutput{Events: toResults(store.Upcoming(from, days))}, nil
	}
}

// EventsOnHandler returns the handler function for the events_on MCP tool.
func EventsOnHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input EventsOnInput) (*mcp.CallToolResult, EventsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EventsOnInput) (*mcp.CallToolResult, EventsOutput, error) {
		d, err := parseDate("date", input.Date)
		if err != nil {
			return nil, EventsOutput{}, err
		}
		return nil, EventsOutput{Events: toResults(store.ByDate(d))}, nil
	}
}
