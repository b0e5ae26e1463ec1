package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/storage"
	"github.com/spf13/cobra"
)

const exportBaseName = "ReadingLog_Export"

var (
	exportFormat string
	exportDir    string
)

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "export format: xlsx or epub")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory to write to (defaults to the data directory)")
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import books and sentences from a workbook",
	Long: `Import books and sentences from an .xlsx workbook with "Books" and
"Sentences" sheets, as written by "reading-log export". Books already in the
collection (same title and author) and known sentences are skipped. If any
row cannot be saved remotely, nothing from the file is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := (&storage.LocalStorage{Path: config.Opts.Data}).Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		res, err := s.Import(cmd.Context(), f)
		if err != nil {
			return err
		}
		if res.Empty() {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing new to import.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books and %d sentences.\n", res.Books, res.Sentences)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as a workbook or an EPUB",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(exportFormat)
		if format != "xlsx" && format != "epub" {
			return &model.ValidationError{Field: "format", Message: fmt.Sprintf("unknown export format %q", exportFormat)}
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		var ok bool
		if format == "epub" {
			ok, err = s.ExportEPUB(&buf)
		} else {
			ok, err = s.ExportWorkbook(&buf)
		}
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No books to export.")
			return nil
		}

		dir := exportDir
		if dir == "" {
			dir = config.Opts.Data
		}
		path, err := (&storage.LocalStorage{Path: dir}).Save(exportBaseName+"."+format, &buf)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}
