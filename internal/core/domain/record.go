package domain

import "time"

// Book represents a book or article with its reading highlights,
// as returned by the export API.
type Book struct {
	// ID is the remote identifier assigned by the export API.
	ID int64

	// Title is the book or article title.
	Title string

	// Author is the author name, if known.
	Author string

	// Category is the remote category (e.g., "books", "articles").
	Category string

	// SourceURL links back to the original content, if any.
	SourceURL string

	// CoverURL links to the cover image, if any.
	CoverURL string

	// UpdatedAt is when the book last changed on the remote side.
	UpdatedAt time.Time

	// Highlights are the highlights belonging to this book.
	Highlights []Highlight
}

// Highlight represents a single highlighted passage.
type Highlight struct {
	// ID is the remote identifier assigned by the export API.
	ID int64

	// BookID links the highlight to its book.
	BookID int64

	// Text is the highlighted passage.
	Text string

	// Note is the user's annotation, if any.
	Note string

	// Location is the position within the book (page, offset, etc.).
	Location int

	// LocationType describes what Location means (e.g., "page", "offset").
	LocationType string

	// Color is the highlight colour chosen by the user.
	Color string

	// URL links directly to the highlight on the remote service, if any.
	URL string

	// HighlightedAt is when the passage was highlighted.
	HighlightedAt time.Time

	// UpdatedAt is when the highlight last changed on the remote side.
	UpdatedAt time.Time
}

// CountHighlights returns the total number of highlights across books.
func CountHighlights(books []Book) int {
	total := 0
	for i := range books {
		total += len(books[i].Highlights)
	}
	return total
}
