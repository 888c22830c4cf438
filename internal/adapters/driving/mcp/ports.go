package mcp

import (
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library reads imported books and highlights.
	Library driven.LibraryStore

	// Sync triggers sync cycles. Optional: without it the sync tool
	// is not registered.
	Sync driving.SyncOrchestrator
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryStore
	}
	// Sync is optional
	return nil
}
