package workbook

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func page(n int) *int {
	return &n
}

func TestWriteThenRead(t *testing.T) {
	tables := model.Tables{
		Books: []model.BookRecord{
			{Title: "Dune", Author: "Herbert", ISBN: "9780441172719", DateAdded: "3/7/2024"},
			{Title: "Emma", Author: "Austen", Publisher: "John Murray", DateAdded: "3/8/2024"},
		},
		Sentences: []model.SentenceRecord{
			{BookTitle: "Dune", BookAuthor: "Herbert", Text: "Fear is the mind-killer.", Page: page(8), DateAdded: "3/7/2024"},
			{BookTitle: "Emma", BookAuthor: "Austen", Text: "Badly done, Emma!", DateAdded: "3/8/2024"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tables))

	batch, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, batch.Books, 2)
	assert.Equal(t, "Dune", batch.Books[0].String(model.ColTitle))
	assert.Equal(t, "9780441172719", batch.Books[0].String(model.ColISBN))
	assert.Equal(t, "John Murray", batch.Books[1].String(model.ColPublisher))

	require.Len(t, batch.Sentences, 2)
	assert.Equal(t, "Herbert", batch.Sentences[0].String(model.ColBookAuthor))
	assert.Equal(t, "Fear is the mind-killer.", batch.Sentences[0].String(model.ColSentence))
	require.NotNil(t, model.ParsePage(batch.Sentences[0].String(model.ColPage)))
	assert.Equal(t, 8, *model.ParsePage(batch.Sentences[0].String(model.ColPage)))
	assert.Nil(t, model.ParsePage(batch.Sentences[1].String(model.ColPage)))
}

func TestReadMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", model.SheetBooks))
	require.NoError(t, f.SetSheetRow(model.SheetBooks, "A1", &[]any{model.ColTitle, model.ColAuthor}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := Read(&buf)
	var formatErr *model.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, model.SheetSentences, formatErr.Sheet)
}

func TestReadNotAWorkbook(t *testing.T) {
	_, err := Read(strings.NewReader("title,author\nDune,Herbert\n"))
	var formatErr *model.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Empty(t, formatErr.Sheet)
}

func TestReadToleratesLayout(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", model.SheetBooks))
	_, err := f.NewSheet(model.SheetSentences)
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(model.SheetBooks, "A1", &[]any{" Author ", "Title", "", "Notes"}))
	require.NoError(t, f.SetSheetRow(model.SheetBooks, "A2", &[]any{"Herbert", "Dune", "ignored", "x"}))
	require.NoError(t, f.SetSheetRow(model.SheetBooks, "A4", &[]any{"Asimov", "Foundation"}))
	require.NoError(t, f.SetSheetRow(model.SheetBooks, "A5", &[]any{"  ", ""}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	batch, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, batch.Books, 2)
	assert.Equal(t, "Dune", batch.Books[0].String(model.ColTitle))
	assert.Equal(t, "Herbert", batch.Books[0].String(model.ColAuthor))
	assert.Equal(t, "x", batch.Books[0].String("Notes"))
	assert.Equal(t, "Foundation", batch.Books[1].String(model.ColTitle))
	assert.Empty(t, batch.Sentences)
}
