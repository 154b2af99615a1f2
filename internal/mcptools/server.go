// Package mcptools exposes the calendar to agents as Model Context Protocol
// tools.
package mcptools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/termcal/internal/holiday"
	"github.com/chris-regnier/termcal/internal/logging"
	"github.com/chris-regnier/termcal/internal/storage"
)

// Version is reported in the MCP implementation info.
const Version = "1.0.0"

// Options configures the MCP server.
type Options struct {
	Holidays *holiday.Provider
	Logger   *slog.Logger
	Now      func() time.Time
}

// NewCalendarMCPServer creates an in-memory MCP server exposing calendar tools.
// Returns the server and a client transport for connecting to it.
func NewCalendarMCPServer(store storage.Storage, opts Options) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, opts)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered calendar tools. Tool
// calls may run concurrently, so the store is wrapped with
// storage.Synchronized.
func CreateMCPServer(store storage.Storage, opts Options) *mcp.Server {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Holidays == nil {
		opts.Holidays = holiday.NewProvider(holiday.Settings{Country: holiday.FallbackCountry, ShowHolidays: true}, nil, opts.Logger)
	}
	store = storage.Synchronized(store)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "termcal",
		Version: Version,
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_events",
		Description: "List upcoming calendar events in date order",
	}, ListEventsHandler(store, opts.Now))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "events_on",
		Description: "List the calendar events on one date",
	}, EventsOnHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_holidays",
		Description: "List public holidays for the configured country",
	}, ListHolidaysHandler(opts.Holidays, opts.Now))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_event",
		Description: "Create a calendar event",
	}, CreateEventHandler(store, opts.Logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_event",
		Description: "Delete a calendar event by ID",
	}, DeleteEventHandler(store, opts.Logger))

	return server
}
