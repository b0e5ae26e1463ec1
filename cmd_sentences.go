package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/spf13/cobra"
)

var (
	sentenceSort string
	sentencePage int
)

func init() {
	rootCmd.AddCommand(sentencesCmd)
	sentencesCmd.AddCommand(sentencesListCmd)
	sentencesCmd.AddCommand(sentencesAddCmd)
	sentencesCmd.AddCommand(sentencesDeleteCmd)

	sentencesListCmd.Flags().StringVar(&sentenceSort, "sort", string(model.SentenceSortPage), "sort by page or createdAt")
	sentencesAddCmd.Flags().IntVar(&sentencePage, "page", 0, "page number, omit when unknown")
}

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "List, add and delete a book's sentences",
}

var sentencesListCmd = &cobra.Command{
	Use:   "list <book-id>",
	Short: "List the sentences of a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sort, err := model.ParseSentenceSort(sentenceSort)
		if err != nil {
			return err
		}
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		sentences, err := s.Sentences(args[0], sort)
		if err != nil {
			return err
		}
		printSentences(cmd, sentences)
		return nil
	},
}

var sentencesAddCmd = &cobra.Command{
	Use:   "add <book-id> <text>",
	Short: "Record a sentence from a book",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := model.SentenceInput{
			BookID: args[0],
			Text:   strings.Join(args[1:], " "),
		}
		if cmd.Flags().Changed("page") {
			page := sentencePage
			in.Page = &page
		}
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		sentence, err := s.AddSentence(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added sentence %s\n", sentence.ID)
		return nil
	},
}

var sentencesDeleteCmd = &cobra.Command{
	Use:   "delete <sentence-id>",
	Short: "Delete a sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := s.DeleteSentence(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted sentence %s\n", args[0])
		return nil
	},
}

func printSentences(cmd *cobra.Command, sentences []*model.Sentence) {
	if len(sentences) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sentences yet.")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPAGE\tADDED\tSENTENCE")
	for _, s := range sentences {
		page := "-"
		if s.Page != nil {
			page = strconv.Itoa(*s.Page)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, page, formatDate(s.CreatedAt), s.Text)
	}
	w.Flush()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(config.Opts.DateLayout)
}
