// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Marginalia. It lets AI assistants like Claude browse and search
// the local highlight library and trigger syncs.
package mcp

import "errors"

// ErrMissingLibraryStore is returned when the library store is not provided.
var ErrMissingLibraryStore = errors.New("mcp: library store is required")
