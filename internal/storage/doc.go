// Package storage defines the event store contract shared by the TUI, the CLI
// commands and the MCP tools. The jsonfile subpackage implements it on top of
// a single pretty-printed JSON document.
package storage
