package exporter // import "github.com/herhimstory-source/Reading-Log/internal/exporter"

import (
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/model"
)

// DefaultDateLayout renders dates the way a US locale prints them.
const DefaultDateLayout = "1/2/2006"

// Export flattens books and sentences into the two export sheets. ok is
// false when there are no books, in which case there is nothing to export.
func Export(books []*model.Book, sentences []*model.Sentence, layout string) (tables model.Tables, ok bool) {
	if len(books) == 0 {
		return model.Tables{}, false
	}
	if layout == "" {
		layout = DefaultDateLayout
	}

	byID := make(map[string]*model.Book, len(books))
	tables.Books = make([]model.BookRecord, 0, len(books))
	for _, b := range books {
		byID[b.ID] = b
		tables.Books = append(tables.Books, model.BookRecord{
			Title:     b.Title,
			Author:    b.Author,
			Publisher: b.Publisher,
			ISBN:      b.ISBN,
			DateAdded: formatDate(b.CreatedAt, layout),
		})
	}

	tables.Sentences = make([]model.SentenceRecord, 0, len(sentences))
	for _, s := range sentences {
		title, author := model.UnknownBook, model.UnknownBook
		if b, found := byID[s.BookID]; found {
			title, author = b.Title, b.Author
		}
		tables.Sentences = append(tables.Sentences, model.SentenceRecord{
			BookTitle:  title,
			BookAuthor: author,
			Text:       s.Text,
			Page:       s.Page,
			DateAdded:  formatDate(s.CreatedAt, layout),
		})
	}
	return tables, true
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layout)
}
