package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Marginalia resources.
const uriScheme = "marginalia://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing books.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "books",
		Name:        "books",
		Description: "List of all imported books",
		MIMEType:    "application/json",
	}, s.handleBooksResource)

	// Template for a book's highlights.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "books/{bookId}/highlights",
		Name:        "book-highlights",
		Description: "Highlights belonging to a specific book",
		MIMEType:    "application/json",
	}, s.handleHighlightsResource)
}

// handleBooksResource returns a list of all imported books.
func (s *Server) handleBooksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	books, err := s.ports.Library.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	// Build simplified book list.
	type bookInfo struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Author   string `json:"author"`
		Category string `json:"category"`
		URI      string `json:"uri,omitempty"`
	}

	infos := make([]bookInfo, len(books))
	for i, book := range books {
		infos[i] = bookInfo{
			ID:       book.ID,
			Title:    book.Title,
			Author:   book.Author,
			Category: book.Category,
			URI:      book.SourceURL,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling books: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHighlightsResource returns highlights for a specific book.
func (s *Server) handleHighlightsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract bookId from URI: marginalia://books/{bookId}/highlights
	bookID, ok := extractBookID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	book, err := s.ports.Library.GetBook(ctx, bookID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type highlightInfo struct {
		ID            int64  `json:"id"`
		Text          string `json:"text"`
		Note          string `json:"note,omitempty"`
		Location      int    `json:"location,omitempty"`
		HighlightedAt string `json:"highlighted_at,omitempty"`
	}

	infos := make([]highlightInfo, len(book.Highlights))
	for i, h := range book.Highlights {
		info := highlightInfo{
			ID:       h.ID,
			Text:     h.Text,
			Note:     h.Note,
			Location: h.Location,
		}
		if !h.HighlightedAt.IsZero() {
			info.HighlightedAt = h.HighlightedAt.Format("2006-01-02")
		}
		infos[i] = info
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling highlights: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractBookID parses the book ID out of a highlights resource URI.
func extractBookID(uri string) (int64, bool) {
	rest, ok := strings.CutPrefix(uri, uriScheme+"books/")
	if !ok {
		return 0, false
	}
	idStr, ok := strings.CutSuffix(rest, "/highlights")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
