package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/cover"
	"github.com/herhimstory-source/Reading-Log/internal/isbn"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bookSort      string
	bookTitle     string
	bookAuthor    string
	bookPublisher string
	bookISBN      string
	bookCoverURL  string
	bookCoverFile string
	bookGenerate  bool
	bookLookup    bool
)

func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksAddCmd)
	booksCmd.AddCommand(booksDeleteCmd)

	booksListCmd.Flags().StringVar(&bookSort, "sort", string(model.BookSortCreatedAt), "sort by createdAt, title or author")

	booksAddCmd.Flags().StringVar(&bookTitle, "title", "", "book title")
	booksAddCmd.Flags().StringVar(&bookAuthor, "author", "", "book author")
	booksAddCmd.Flags().StringVar(&bookPublisher, "publisher", "", "publisher")
	booksAddCmd.Flags().StringVar(&bookISBN, "isbn", "", "ISBN")
	booksAddCmd.Flags().StringVar(&bookCoverURL, "cover-url", "", "cover image URL")
	booksAddCmd.Flags().StringVar(&bookCoverFile, "cover-file", "", "PNG or JPEG cover stored inline as WebP")
	booksAddCmd.Flags().BoolVar(&bookGenerate, "generate-cover", false, "generate cover art from the title and author")
	booksAddCmd.Flags().BoolVar(&bookLookup, "lookup", false, "fill missing fields from an ISBN lookup")
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List, add and delete books",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sort, err := model.ParseBookSort(bookSort)
		if err != nil {
			return err
		}
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		printBooks(cmd, s.Books(sort))
		return nil
	},
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book",
	Long: `Add a book. Title and author are required unless --lookup finds them
from --isbn. Explicit flags always win over looked-up values.

Examples:
  reading-log books add --title Dune --author "Frank Herbert"
  reading-log books add --isbn 9780441172719 --lookup --generate-cover`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		in := model.BookInput{
			Title:      bookTitle,
			Author:     bookAuthor,
			Publisher:  bookPublisher,
			ISBN:       bookISBN,
			CoverImage: bookCoverURL,
		}

		if bookLookup {
			if err := fillFromLookup(ctx, &in); err != nil {
				return err
			}
		}
		if bookCoverURL == "" {
			if err := chooseCover(ctx, &in); err != nil {
				return err
			}
		}

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		book, err := s.AddBook(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s (%s)\n", book.Title, book.Author, book.ID)
		return nil
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <book-id>",
	Short: "Delete a book and all of its sentences",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := s.DeleteBook(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted book %s\n", args[0])
		return nil
	},
}

func fillFromLookup(ctx context.Context, in *model.BookInput) error {
	if in.ISBN == "" {
		return &model.ValidationError{Field: "isbn", Message: "--lookup needs --isbn"}
	}
	v, err := isbn.NewClient(config.Opts.BooksAPIURL, httpTimeout()).Lookup(ctx, in.ISBN)
	if err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = v.Title
	}
	if in.Author == "" {
		in.Author = v.Author
	}
	if in.Publisher == "" {
		in.Publisher = v.Publisher
	}
	in.ISBN = v.ISBN
	if in.CoverImage == "" {
		in.CoverImage = v.CoverImage
	}
	return nil
}

// chooseCover applies --cover-file or --generate-cover. A failed generation
// falls back to whatever cover is already set.
func chooseCover(ctx context.Context, in *model.BookInput) error {
	if bookCoverFile != "" {
		uri, err := cover.FileDataURI(bookCoverFile, config.Opts.CoverWebPQuality)
		if err != nil {
			return err
		}
		in.CoverImage = uri
		return nil
	}
	if !bookGenerate {
		return nil
	}

	g, err := cover.NewGenerator(config.Opts.GeminiAPIKey, config.Opts.GeminiBaseURL, config.Opts.CoverModel, config.Opts.CoverWebPQuality)
	if err == nil {
		var uri string
		if uri, err = g.Generate(ctx, in.Title, in.Author); err == nil {
			in.CoverImage = uri
			return nil
		}
	}
	log.Warn("Cover generation failed, keeping default cover", zap.Error(err))
	return nil
}

func printBooks(cmd *cobra.Command, books []*model.Book) {
	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No books yet.")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPUBLISHER\tISBN\tADDED")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Publisher, b.ISBN, formatDate(b.CreatedAt))
	}
	w.Flush()
}
