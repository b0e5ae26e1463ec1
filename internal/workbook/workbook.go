package workbook // import "github.com/herhimstory-source/Reading-Log/internal/workbook"

import (
	"io"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Read parses an import workbook. Both the Books and Sentences sheets must
// exist; the first row of each names the columns.
func Read(r io.Reader) (model.Batch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.Batch{}, &model.FormatError{Err: errors.Wrap(err, "open workbook")}
	}
	defer f.Close()

	var batch model.Batch
	if batch.Books, err = readSheet(f, model.SheetBooks); err != nil {
		return model.Batch{}, err
	}
	if batch.Sentences, err = readSheet(f, model.SheetSentences); err != nil {
		return model.Batch{}, err
	}
	return batch, nil
}

func readSheet(f *excelize.File, sheet string) ([]model.Row, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, &model.FormatError{Sheet: sheet, Err: errors.New("sheet is missing")}
	}

	// Raw values keep long numeric cells such as ISBNs intact.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &model.FormatError{Sheet: sheet, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	out := make([]model.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(model.Row, len(header))
		blank := true
		for i, v := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, dup := row[header[i]]; dup {
				continue
			}
			row[header[i]] = v
			if strings.TrimSpace(v) != "" {
				blank = false
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out, nil
}

// Write stores tables as a two-sheet workbook in the import layout.
func Write(w io.Writer, tables model.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, model.SheetBooks); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if _, err := f.NewSheet(model.SheetSentences); err != nil {
		return errors.Wrap(err, "add sheet")
	}

	books := make([][]any, 0, len(tables.Books))
	for _, r := range tables.Books {
		books = append(books, r.Values())
	}
	if err := writeSheet(f, model.SheetBooks, model.BookColumns, books); err != nil {
		return err
	}

	sentences := make([][]any, 0, len(tables.Sentences))
	for _, r := range tables.Sentences {
		sentences = append(sentences, r.Values())
	}
	if err := writeSheet(f, model.SheetSentences, model.SentenceColumns, sentences); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]any) error {
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "write %s header", sheet)
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := values
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "write %s row %d", sheet, i+2)
		}
	}
	return nil
}
