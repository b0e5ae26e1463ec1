package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Sheet and column names of the import/export workbook.
const (
	SheetBooks     = "Books"
	SheetSentences = "Sentences"

	ColTitle      = "Title"
	ColAuthor     = "Author"
	ColPublisher  = "Publisher"
	ColISBN       = "ISBN"
	ColDateAdded  = "Date Added"
	ColBookTitle  = "Book Title"
	ColBookAuthor = "Author"
	ColSentence   = "Sentence"
	ColPage       = "Page"

	// UnknownBook stands in for a sentence's book title and author when the
	// book cannot be resolved on export.
	UnknownBook = "Unknown"
)

var (
	BookColumns     = []string{ColTitle, ColAuthor, ColPublisher, ColISBN, ColDateAdded}
	SentenceColumns = []string{ColBookTitle, ColBookAuthor, ColSentence, ColPage, ColDateAdded}
)

// Row is one untyped tabular record, column name to scalar value.
type Row map[string]any

// String returns the value of col as a string, empty when the column is
// missing. Whole floats print without a fraction so numeric ISBN cells survive.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Trimmed is String with surrounding whitespace removed.
func (r Row) Trimmed(col string) string {
	return strings.TrimSpace(r.String(col))
}

// Batch is an externally supplied set of rows to reconcile into the store.
type Batch struct {
	Books     []Row
	Sentences []Row
}

// BookRecord is the flat export form of a Book.
type BookRecord struct {
	Title     string
	Author    string
	Publisher string
	ISBN      string
	DateAdded string
}

func (r BookRecord) Values() []any {
	return []any{r.Title, r.Author, r.Publisher, r.ISBN, r.DateAdded}
}

// SentenceRecord is the flat export form of a Sentence.
type SentenceRecord struct {
	BookTitle  string
	BookAuthor string
	Text       string
	Page       *int
	DateAdded  string
}

func (r SentenceRecord) Values() []any {
	var page any = ""
	if r.Page != nil {
		page = *r.Page
	}
	return []any{r.BookTitle, r.BookAuthor, r.Text, page, r.DateAdded}
}

// Tables is the two-sheet export of the whole collection.
type Tables struct {
	Books     []BookRecord
	Sentences []SentenceRecord
}
