package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/herhimstory-source/Reading-Log/internal/app"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/spf13/cobra"
)

var searchType string

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(model.SearchSentence), "field to search: sentence, title, author, publisher or isbn")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search sentences or books",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := model.ParseSearchType(searchType)
		if err != nil {
			return err
		}
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}

		res := s.Search(strings.Join(args, " "), typ)
		if res.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
			return nil
		}
		if typ == model.SearchSentence {
			printSentenceHits(cmd, s, res.Sentences)
		} else {
			printBooks(cmd, res.Books)
		}
		return nil
	},
}

// printSentenceHits lists matching sentences with the book each comes from.
func printSentenceHits(cmd *cobra.Command, s *app.Service, sentences []*model.Sentence) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPAGE\tSENTENCE")
	for _, sen := range sentences {
		title, author := model.UnknownBook, model.UnknownBook
		if b, err := s.Book(sen.BookID); err == nil {
			title, author = b.Title, b.Author
		}
		page := "-"
		if sen.Page != nil {
			page = strconv.Itoa(*sen.Page)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", sen.ID, title, author, page, sen.Text)
	}
	w.Flush()
}
