package importer // import "github.com/herhimstory-source/Reading-Log/internal/importer"

import (
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/model"
)

type bookKey struct {
	title  string
	author string
}

type sentenceKey struct {
	bookID string
	text   string
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keyOfBook(title, author string) bookKey {
	return bookKey{title: fold(title), author: fold(author)}
}

// Plan is the set of new entities a batch would add, in row order, plus
// counts of the rows that were skipped.
type Plan struct {
	Books     []*model.Book
	Sentences []*model.Sentence

	// Incomplete rows miss a title, author or sentence text.
	Incomplete int
	Duplicates int
	// Unresolved sentence rows name a book that is neither stored nor
	// created by the same batch.
	Unresolved int
}

func (p *Plan) Empty() bool {
	return len(p.Books) == 0 && len(p.Sentences) == 0
}

func (p *Plan) bookIDs() []string {
	ids := make([]string, 0, len(p.Books))
	for _, b := range p.Books {
		ids = append(ids, b.ID)
	}
	return ids
}

func (p *Plan) sentenceIDs() []string {
	ids := make([]string, 0, len(p.Sentences))
	for _, s := range p.Sentences {
		ids = append(ids, s.ID)
	}
	return ids
}

// Plan computes what importing batch would add without touching the store
// or the remote.
func (im *Importer) Plan(batch model.Batch) *Plan {
	plan := &Plan{}
	now := im.now()

	books := make(map[bookKey]string)
	for _, b := range im.store.Books() {
		books[keyOfBook(b.Title, b.Author)] = b.ID
	}

	for _, row := range batch.Books {
		title, author := row.Trimmed(model.ColTitle), row.Trimmed(model.ColAuthor)
		if title == "" || author == "" {
			plan.Incomplete++
			continue
		}
		key := keyOfBook(title, author)
		if _, ok := books[key]; ok {
			plan.Duplicates++
			continue
		}
		b := &model.Book{
			ID:         im.newID(),
			Title:      title,
			Author:     author,
			Publisher:  row.Trimmed(model.ColPublisher),
			ISBN:       row.Trimmed(model.ColISBN),
			CoverImage: im.placeholder(),
			CreatedAt:  now,
		}
		books[key] = b.ID
		plan.Books = append(plan.Books, b)
	}

	sentences := make(map[sentenceKey]struct{})
	for _, s := range im.store.Sentences() {
		sentences[sentenceKey{bookID: s.BookID, text: fold(s.Text)}] = struct{}{}
	}

	for _, row := range batch.Sentences {
		title, author := row.Trimmed(model.ColBookTitle), row.Trimmed(model.ColBookAuthor)
		text := row.Trimmed(model.ColSentence)
		if title == "" || author == "" || text == "" {
			plan.Incomplete++
			continue
		}
		bookID, ok := books[keyOfBook(title, author)]
		if !ok {
			plan.Unresolved++
			continue
		}
		key := sentenceKey{bookID: bookID, text: fold(text)}
		if _, ok := sentences[key]; ok {
			plan.Duplicates++
			continue
		}
		s := &model.Sentence{
			ID:        im.newID(),
			BookID:    bookID,
			Text:      text,
			Page:      model.ParsePage(row.String(model.ColPage)),
			CreatedAt: now,
		}
		sentences[key] = struct{}{}
		plan.Sentences = append(plan.Sentences, s)
	}
	return plan
}
