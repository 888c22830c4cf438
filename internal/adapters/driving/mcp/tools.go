package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_highlights tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to find in highlight text and notes"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_highlights tool.
type SearchOutput struct {
	Results []HighlightOutput `json:"results"`
	Count   int               `json:"count"`
}

// HighlightOutput represents a single highlight result.
type HighlightOutput struct {
	ID     int64  `json:"id"`
	BookID int64  `json:"book_id"`
	Text   string `json:"text"`
	Note   string `json:"note,omitempty"`
	URL    string `json:"url,omitempty"`
}

// SyncInput is the input schema for the sync_now tool.
type SyncInput struct {
	Full bool `json:"full,omitempty" jsonschema:"re-fetch the entire library instead of only recent changes"`
}

// SyncOutput is the output schema for the sync_now tool.
type SyncOutput struct {
	Outcome    string `json:"outcome"`
	Books      int    `json:"books"`
	Highlights int    `json:"highlights"`
	Message    string `json:"message,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_highlights",
		Description: "Search the local highlight library by text or note content",
	}, s.handleSearch)

	if s.ports.Sync != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "sync_now",
			Description: "Synchronise highlights from the provider immediately",
		}, s.handleSync)
	}
}

// handleSearch handles the search_highlights tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	highlights, err := s.ports.Library.SearchHighlights(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]HighlightOutput, len(highlights)),
		Count:   len(highlights),
	}
	for i, h := range highlights {
		output.Results[i] = HighlightOutput{
			ID:     h.ID,
			BookID: h.BookID,
			Text:   h.Text,
			Note:   h.Note,
			URL:    h.URL,
		}
	}

	return nil, output, nil
}

// handleSync handles the sync_now tool invocation.
func (s *Server) handleSync(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SyncInput,
) (*mcp.CallToolResult, SyncOutput, error) {
	outcome := s.ports.Sync.RunCycle(ctx, domain.SyncOptions{
		IgnoreLastSync: input.Full,
		Trigger:        domain.TriggerManual,
	})

	if outcome.Kind == domain.OutcomeAuthFailure {
		return nil, SyncOutput{}, errors.New("credential rejected: update the API key with 'marginalia settings key'")
	}

	return nil, SyncOutput{
		Outcome:    string(outcome.Kind),
		Books:      len(outcome.Books),
		Highlights: domain.CountHighlights(outcome.Books),
		Message:    outcome.Message,
	}, nil
}
