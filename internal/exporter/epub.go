package exporter

import (
	"fmt"
	"html"
	"io"
	"strings"

	epub "github.com/go-shiori/go-epub"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/query"
	"github.com/pkg/errors"
)

// WriteEPUB writes a commonplace book: one section per book in title order,
// each listing the book's sentences by page. It reports false and writes
// nothing when there are no books.
func WriteEPUB(w io.Writer, title string, books []*model.Book, sentences []*model.Sentence, locale string) (bool, error) {
	if len(books) == 0 {
		return false, nil
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return false, errors.Wrap(err, "create epub")
	}
	e.SetAuthor(title)
	e.SetDescription(fmt.Sprintf("%d books, %d sentences", len(books), len(sentences)))

	byBook := make(map[string][]*model.Sentence)
	for _, s := range sentences {
		byBook[s.BookID] = append(byBook[s.BookID], s)
	}

	for i, b := range query.SortBooks(books, model.BookSortTitle, locale) {
		body := sectionBody(b, query.SortSentences(byBook[b.ID], model.SentenceSortPage))
		if _, err := e.AddSection(body, b.Title, fmt.Sprintf("book%04d.xhtml", i+1), ""); err != nil {
			return false, errors.Wrapf(err, "add section for %q", b.Title)
		}
	}

	if _, err := e.WriteTo(w); err != nil {
		return false, errors.Wrap(err, "write epub")
	}
	return true, nil
}

func sectionBody(b *model.Book, sentences []*model.Sentence) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(b.Title))
	fmt.Fprintf(&sb, "<p class=\"author\">%s</p>\n", html.EscapeString(b.Author))
	if len(sentences) == 0 {
		sb.WriteString("<p>No sentences yet.</p>\n")
	}
	for _, s := range sentences {
		sb.WriteString("<blockquote>\n")
		fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(s.Text))
		if s.Page != nil {
			fmt.Fprintf(&sb, "<p class=\"page\">p. %d</p>\n", *s.Page)
		}
		sb.WriteString("</blockquote>\n")
	}
	return sb.String()
}
