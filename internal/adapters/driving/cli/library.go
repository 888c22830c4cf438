package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var librarySearchLimit int

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse imported books and highlights",
	RunE:  runLibraryList,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported books",
	RunE:  runLibraryList,
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <book-id>",
	Short: "Show a book and its highlights",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search highlight text and notes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLibrarySearch,
}

func init() {
	librarySearchCmd.Flags().IntVar(&librarySearchLimit, "limit", 20, "maximum number of results")
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryList(cmd *cobra.Command, _ []string) error {
	if libraryStore == nil {
		return errors.New("library store not configured")
	}

	books, err := libraryStore.ListBooks(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}
	if len(books) == 0 {
		cmd.Println("No books imported yet. Run 'marginalia sync' first.")
		return nil
	}

	for _, book := range books {
		author := book.Author
		if author == "" {
			author = "(unknown author)"
		}
		cmd.Printf("%8d  %-40s %s\n", book.ID, truncate(book.Title, 40), author)
	}
	cmd.Printf("\n%d books.\n", len(books))
	return nil
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	if libraryStore == nil {
		return errors.New("library store not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid book id %q", args[0])
	}

	book, err := libraryStore.GetBook(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("reading book: %w", err)
	}

	cmd.Printf("%s\n", book.Title)
	if book.Author != "" {
		cmd.Printf("by %s\n", book.Author)
	}
	if book.SourceURL != "" {
		cmd.Printf("%s\n", book.SourceURL)
	}
	cmd.Println()

	for _, h := range book.Highlights {
		cmd.Printf("  > %s\n", h.Text)
		if h.Note != "" {
			cmd.Printf("    Note: %s\n", h.Note)
		}
		cmd.Println()
	}
	cmd.Printf("%d highlights.\n", len(book.Highlights))
	return nil
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	if libraryStore == nil {
		return errors.New("library store not configured")
	}

	query := args[0]
	for _, arg := range args[1:] {
		query += " " + arg
	}

	highlights, err := libraryStore.SearchHighlights(cmd.Context(), query, librarySearchLimit)
	if err != nil {
		return fmt.Errorf("searching highlights: %w", err)
	}
	if len(highlights) == 0 {
		cmd.Println("No matching highlights.")
		return nil
	}

	for _, h := range highlights {
		cmd.Printf("  > %s\n", h.Text)
		if h.Note != "" {
			cmd.Printf("    Note: %s\n", h.Note)
		}
		cmd.Printf("    (book %d)\n\n", h.BookID)
	}
	cmd.Printf("%d results.\n", len(highlights))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
