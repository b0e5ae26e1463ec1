package main

import (
	"fmt"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/cover"
	"github.com/herhimstory-source/Reading-Log/internal/isbn"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/spf13/cobra"
)

var (
	coverTitle  string
	coverAuthor string
	coverFile   string
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(coverCmd)

	coverCmd.Flags().StringVar(&coverTitle, "title", "", "book title")
	coverCmd.Flags().StringVar(&coverAuthor, "author", "", "book author")
	coverCmd.Flags().StringVar(&coverFile, "file", "", "convert a local png or jpeg instead of generating")
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <isbn>",
	Short: "Look up book details by ISBN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := isbn.NewClient(config.Opts.BooksAPIURL, httpTimeout()).Lookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Title:     %s\n", v.Title)
		fmt.Fprintf(out, "Author:    %s\n", v.Author)
		fmt.Fprintf(out, "Publisher: %s\n", v.Publisher)
		fmt.Fprintf(out, "ISBN:      %s\n", v.ISBN)
		fmt.Fprintf(out, "Cover:     %s\n", v.CoverImage)
		return nil
	},
}

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Generate cover art and print it as a data URI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if coverFile != "" {
			uri, err := cover.FileDataURI(coverFile, config.Opts.CoverWebPQuality)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		}
		if coverTitle == "" || coverAuthor == "" {
			return &model.ValidationError{Message: "--title and --author are required to generate a cover"}
		}

		g, err := cover.NewGenerator(config.Opts.GeminiAPIKey, config.Opts.GeminiBaseURL, config.Opts.CoverModel, config.Opts.CoverWebPQuality)
		if err != nil {
			return err
		}
		uri, err := g.Generate(cmd.Context(), coverTitle, coverAuthor)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	},
}
