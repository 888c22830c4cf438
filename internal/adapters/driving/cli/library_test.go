package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

func setupLibraryTest(library *cliMockLibrary) func() {
	oldLibrary := libraryStore
	libraryStore = library
	return func() {
		libraryStore = oldLibrary
		librarySearchLimit = 20
	}
}

func TestLibraryList_Empty(t *testing.T) {
	cleanup := setupLibraryTest(&cliMockLibrary{})
	defer cleanup()

	out, err := executeCommand("library", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No books imported yet.")
}

func TestLibraryList_ShowsBooks(t *testing.T) {
	library := &cliMockLibrary{
		books: []domain.Book{
			{ID: 42, Title: "The Go Programming Language", Author: "Donovan & Kernighan"},
			{ID: 43, Title: "Untitled Import"},
		},
	}
	cleanup := setupLibraryTest(library)
	defer cleanup()

	out, err := executeCommand("library")

	require.NoError(t, err)
	assert.Contains(t, out, "The Go Programming Language")
	assert.Contains(t, out, "(unknown author)")
	assert.Contains(t, out, "2 books.")
}

func TestLibraryShow_PrintsHighlights(t *testing.T) {
	library := &cliMockLibrary{
		book: &domain.Book{
			ID:     42,
			Title:  "The Go Programming Language",
			Author: "Donovan & Kernighan",
			Highlights: []domain.Highlight{
				{ID: 1001, Text: "Clear is better than clever.", Note: "yes"},
			},
		},
	}
	cleanup := setupLibraryTest(library)
	defer cleanup()

	out, err := executeCommand("library", "show", "42")

	require.NoError(t, err)
	assert.Contains(t, out, "Clear is better than clever.")
	assert.Contains(t, out, "Note: yes")
	assert.Contains(t, out, "1 highlights.")
}

func TestLibraryShow_InvalidID(t *testing.T) {
	cleanup := setupLibraryTest(&cliMockLibrary{})
	defer cleanup()

	_, err := executeCommand("library", "show", "not-a-number")

	assert.Error(t, err)
}

func TestLibrarySearch_PrintsResults(t *testing.T) {
	library := &cliMockLibrary{
		highlights: []domain.Highlight{
			{ID: 1001, BookID: 42, Text: "Do not communicate by sharing memory."},
		},
	}
	cleanup := setupLibraryTest(library)
	defer cleanup()

	out, err := executeCommand("library", "search", "memory")

	require.NoError(t, err)
	assert.Contains(t, out, "sharing memory")
	assert.Contains(t, out, "(book 42)")
	assert.Contains(t, out, "1 results.")
}

func TestLibrarySearch_NoMatches(t *testing.T) {
	cleanup := setupLibraryTest(&cliMockLibrary{})
	defer cleanup()

	out, err := executeCommand("library", "search", "nothing")

	require.NoError(t, err)
	assert.Contains(t, out, "No matching highlights.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long title here", 10))
}
