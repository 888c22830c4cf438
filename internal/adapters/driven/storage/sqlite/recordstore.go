package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// recordStore implements the record-facing driven ports: importing
// fetched books, registering record kinds and reading the library back.
type recordStore struct {
	store *Store
}

var (
	_ driven.RecordImporter  = (*recordStore)(nil)
	_ driven.SchemaRegistrar = (*recordStore)(nil)
	_ driven.LibraryStore    = (*recordStore)(nil)
)

// ImportRecords upserts the given books and their highlights.
// Matching is by external identifier, so re-importing an overlapping
// window updates rows in place instead of duplicating them.
func (s *recordStore) ImportRecords(ctx context.Context, books []domain.Book) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	bookStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO books (external_id, title, author, category, source_url, cover_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			category = excluded.category,
			source_url = excluded.source_url,
			cover_url = excluded.cover_url,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing book statement: %w", err)
	}
	defer bookStmt.Close()

	highlightStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO highlights
			(external_id, book_external_id, text, note, location, location_type, color, url, highlighted_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			book_external_id = excluded.book_external_id,
			text = excluded.text,
			note = excluded.note,
			location = excluded.location,
			location_type = excluded.location_type,
			color = excluded.color,
			url = excluded.url,
			highlighted_at = excluded.highlighted_at,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing highlight statement: %w", err)
	}
	defer highlightStmt.Close()

	for _, book := range books {
		if _, err := bookStmt.ExecContext(ctx, book.ID, book.Title, book.Author,
			book.Category, book.SourceURL, book.CoverURL, book.UpdatedAt); err != nil {
			return fmt.Errorf("saving book %d: %w", book.ID, err)
		}

		for _, h := range book.Highlights {
			bookID := h.BookID
			if bookID == 0 {
				bookID = book.ID
			}
			if _, err := highlightStmt.ExecContext(ctx, h.ID, bookID, h.Text, h.Note,
				h.Location, h.LocationType, h.Color, h.URL, h.HighlightedAt, h.UpdatedAt); err != nil {
				return fmt.Errorf("saving highlight %d: %w", h.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RegisterKinds declares the given record kinds, updating the attribute
// set of kinds that already exist.
func (s *recordStore) RegisterKinds(ctx context.Context, kinds []domain.RecordKind) error {
	for _, kind := range kinds {
		if kind.Name == "" {
			return domain.ErrInvalidInput
		}

		attributesJSON, err := json.Marshal(kind.Attributes)
		if err != nil {
			return fmt.Errorf("marshalling attributes for %s: %w", kind.Name, err)
		}

		_, err = s.store.db.ExecContext(ctx, `
			INSERT INTO record_kinds (name, attributes, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET
				attributes = excluded.attributes,
				updated_at = CURRENT_TIMESTAMP
		`, kind.Name, string(attributesJSON))
		if err != nil {
			return fmt.Errorf("registering kind %s: %w", kind.Name, err)
		}
	}
	return nil
}

// ListBooks returns all imported books, most recently updated first.
func (s *recordStore) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT external_id, title, author, category, source_url, cover_url, updated_at
		FROM books
		ORDER BY updated_at DESC, external_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book //nolint:prealloc // size unknown from query
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}

// GetBook returns one book with its highlights.
func (s *recordStore) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT external_id, title, author, category, source_url, cover_url, updated_at
		FROM books WHERE external_id = ?
	`, id)

	var book domain.Book
	var updatedAt sql.NullTime
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Category,
		&book.SourceURL, &book.CoverURL, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning book: %w", err)
	}
	if updatedAt.Valid {
		book.UpdatedAt = updatedAt.Time
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT external_id, book_external_id, text, note, location, location_type, color, url, highlighted_at, updated_at
		FROM highlights WHERE book_external_id = ?
		ORDER BY location, external_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying highlights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		highlight, err := scanHighlight(rows)
		if err != nil {
			return nil, err
		}
		book.Highlights = append(book.Highlights, *highlight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating highlights: %w", err)
	}

	return &book, nil
}

// SearchHighlights returns highlights whose text or note contains the
// query, most recently highlighted first.
func (s *recordStore) SearchHighlights(ctx context.Context, query string, limit int) ([]domain.Highlight, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + query + "%"

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT external_id, book_external_id, text, note, location, location_type, color, url, highlighted_at, updated_at
		FROM highlights
		WHERE text LIKE ? OR note LIKE ?
		ORDER BY highlighted_at DESC, external_id DESC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching highlights: %w", err)
	}
	defer rows.Close()

	var highlights []domain.Highlight //nolint:prealloc // size unknown from query
	for rows.Next() {
		highlight, err := scanHighlight(rows)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, *highlight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating highlights: %w", err)
	}

	return highlights, nil
}

// scanBook scans a book row without highlights.
func scanBook(rows *sql.Rows) (*domain.Book, error) {
	var book domain.Book
	var updatedAt sql.NullTime
	if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Category,
		&book.SourceURL, &book.CoverURL, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning book: %w", err)
	}
	if updatedAt.Valid {
		book.UpdatedAt = updatedAt.Time
	}
	return &book, nil
}

// scanHighlight scans a highlight from *sql.Rows.
func scanHighlight(rows *sql.Rows) (*domain.Highlight, error) {
	var h domain.Highlight
	var highlightedAt, updatedAt sql.NullTime
	if err := rows.Scan(&h.ID, &h.BookID, &h.Text, &h.Note, &h.Location,
		&h.LocationType, &h.Color, &h.URL, &highlightedAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning highlight: %w", err)
	}
	if highlightedAt.Valid {
		h.HighlightedAt = highlightedAt.Time
	}
	if updatedAt.Valid {
		h.UpdatedAt = updatedAt.Time
	}
	return &h, nil
}
