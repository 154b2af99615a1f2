package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes calendar tools
over stdio transport.

Available tools:
  - list_events: Upcoming events, a date window or everything
  - events_on: Events on one date
  - create_event: Create an event
  - delete_event: Delete an event by ID
  - list_holidays: Public holidays for a year or month

Example client config:
  {
    "mcpServers": {
      "termcal": {
        "command": "/path/to/termcal",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, mcptools.Options{
		Holidays: holidays,
		Logger:   logger,
		Now:      now,
	})

	// stdout is reserved for the protocol; logs go to the log file.
	logger.Info("starting MCP server", "transport", "stdio", "data_dir", appConfig.DataDir)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}
