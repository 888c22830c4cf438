package readwise

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

const (
	// DefaultBaseURL is the production Readwise API origin.
	DefaultBaseURL = "https://readwise.io"

	// ExportPath is the highlight export endpoint.
	ExportPath = "/api/v2/export/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxErrorBody caps how much of an error response body is read.
	MaxErrorBody = 4096
)

// Client fetches highlight exports from the Readwise API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *RateLimiter
}

// NewClient creates a new Readwise export client.
func NewClient() *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		baseURL:     DefaultBaseURL,
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithBaseURL creates a client against a non-default origin.
// Used by tests and self-hosted deployments.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

var _ driven.ExportClient = (*Client)(nil)

// exportResponse is one page of the export endpoint.
type exportResponse struct {
	Count          int          `json:"count"`
	NextPageCursor *json.Number `json:"nextPageCursor"`
	Results        []exportBook `json:"results"`
}

type exportBook struct {
	UserBookID    int64             `json:"user_book_id"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	Category      string            `json:"category"`
	SourceURL     string            `json:"source_url"`
	CoverImageURL string            `json:"cover_image_url"`
	Highlights    []exportHighlight `json:"highlights"`
}

type exportHighlight struct {
	ID            int64  `json:"id"`
	BookID        int64  `json:"book_id"`
	Text          string `json:"text"`
	Note          string `json:"note"`
	Location      int    `json:"location"`
	LocationType  string `json:"location_type"`
	Color         string `json:"color"`
	ReadwiseURL   string `json:"readwise_url"`
	HighlightedAt string `json:"highlighted_at"`
	UpdatedAt     string `json:"updated_at"`
}

// FetchExports retrieves every book updated since the given time,
// following the server's page cursor until the export is complete.
// A nil since requests the full library.
func (c *Client) FetchExports(ctx context.Context, apiKey string, since *time.Time) ([]domain.Book, error) {
	var books []domain.Book
	var pageCursor string

	for page := 1; ; page++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		resp, err := c.fetchPage(ctx, apiKey, since, pageCursor)
		if err != nil {
			return nil, err
		}

		for _, book := range resp.Results {
			books = append(books, toDomainBook(book))
		}

		if resp.NextPageCursor == nil || resp.NextPageCursor.String() == "" {
			break
		}
		pageCursor = resp.NextPageCursor.String()
		logger.Debug("export page %d fetched, following cursor", page)
	}

	return books, nil
}

// fetchPage requests a single export page and classifies failures.
func (c *Client) fetchPage(ctx context.Context, apiKey string, since *time.Time, pageCursor string) (*exportResponse, error) {
	endpoint := c.baseURL + ExportPath
	query := url.Values{}
	if since != nil {
		query.Set("updatedAfter", since.UTC().Format(time.RFC3339Nano))
	}
	if pageCursor != "" {
		query.Set("pageCursor", pageCursor)
	}
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.rateLimiter.UpdateFromResponse(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(resp, endpoint)
	}

	var page exportResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode export page: %w: %w", domain.ErrMalformedResponse, err)
	}
	return &page, nil
}

// classifyStatus converts a non-200 response into a typed error.
func (c *Client) classifyStatus(resp *http.Response, endpoint string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBody))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(body), URL: endpoint}
		return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, apiErr)
	case http.StatusTooManyRequests:
		rateErr := &RateLimitError{RetryAfter: RetryDelay(resp)}
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, rateErr)
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: string(body), URL: endpoint}
	}
}

// toDomainBook maps an export payload book to the domain model.
func toDomainBook(book exportBook) domain.Book {
	highlights := make([]domain.Highlight, 0, len(book.Highlights))
	latest := time.Time{}
	for _, h := range book.Highlights {
		mapped := domain.Highlight{
			ID:            h.ID,
			BookID:        h.BookID,
			Text:          h.Text,
			Note:          h.Note,
			Location:      h.Location,
			LocationType:  h.LocationType,
			Color:         h.Color,
			URL:           h.ReadwiseURL,
			HighlightedAt: parseTime(h.HighlightedAt),
			UpdatedAt:     parseTime(h.UpdatedAt),
		}
		if mapped.BookID == 0 {
			mapped.BookID = book.UserBookID
		}
		if mapped.UpdatedAt.After(latest) {
			latest = mapped.UpdatedAt
		}
		highlights = append(highlights, mapped)
	}

	return domain.Book{
		ID:         book.UserBookID,
		Title:      book.Title,
		Author:     book.Author,
		Category:   book.Category,
		SourceURL:  book.SourceURL,
		CoverURL:   book.CoverImageURL,
		UpdatedAt:  latest,
		Highlights: highlights,
	}
}

// parseTime tolerates the timestamp variants the export API emits.
func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	logger.Debug("unparseable export timestamp: %q", value)
	return time.Time{}
}
