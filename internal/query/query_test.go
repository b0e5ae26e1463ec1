package query

import (
	"testing"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(day int) time.Time {
	return base.AddDate(0, 0, day)
}

func page(n int) *int {
	return &n
}

func bookTitles(books []*model.Book) []string {
	var out []string
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func sentenceIDs(sentences []*model.Sentence) []string {
	var out []string
	for _, s := range sentences {
		out = append(out, s.ID)
	}
	return out
}

func library() []*model.Book {
	return []*model.Book{
		{ID: "1", Title: "dune", Author: "Herbert", Publisher: "Chilton", ISBN: "9780441172719", CreatedAt: at(1)},
		{ID: "2", Title: "Émile", Author: "Rousseau", CreatedAt: at(3)},
		{ID: "3", Title: "Emma", Author: "austen", Publisher: "John Murray", CreatedAt: at(2)},
		{ID: "4", Title: "Zazie", Author: "Queneau", CreatedAt: at(3)},
	}
}

func TestSearchBooks(t *testing.T) {
	books := library()
	assert.Equal(t, []string{"Émile", "Emma"}, bookTitles(SearchBooks(books, "M", model.SearchTitle)))
	assert.Equal(t, []string{"Emma"}, bookTitles(SearchBooks(books, "AUST", model.SearchAuthor)))
	assert.Equal(t, []string{"Emma"}, bookTitles(SearchBooks(books, "murray", model.SearchPublisher)))
	assert.Equal(t, []string{"dune"}, bookTitles(SearchBooks(books, "044117", model.SearchISBN)))
	assert.Empty(t, SearchBooks(books, "   ", model.SearchTitle))
	assert.Empty(t, SearchBooks(books, "", model.SearchAuthor))
}

func TestSearchQueryNotTrimmed(t *testing.T) {
	books := library()
	assert.Empty(t, SearchBooks(books, " dune", model.SearchTitle))
}

func TestSearchSentences(t *testing.T) {
	sentences := []*model.Sentence{
		{ID: "a", Text: "Fear is the mind-killer."},
		{ID: "b", Text: "The spice must flow."},
		{ID: "c", Text: "I must not fear."},
	}
	res := Search(nil, sentences, "FEAR", model.SearchSentence)
	assert.Equal(t, []string{"a", "c"}, sentenceIDs(res.Sentences))
	assert.Empty(t, res.Books)
	assert.Equal(t, 2, res.Len())
}

func TestSortBooks(t *testing.T) {
	books := library()

	assert.Equal(t, []string{"Émile", "Zazie", "Emma", "dune"},
		bookTitles(SortBooks(books, model.BookSortCreatedAt, "en")))
	assert.Equal(t, []string{"dune", "Émile", "Emma", "Zazie"},
		bookTitles(SortBooks(books, model.BookSortTitle, "en")))
	assert.Equal(t, []string{"Emma", "dune", "Zazie", "Émile"},
		bookTitles(SortBooks(books, model.BookSortAuthor, "not a locale!")))

	// input untouched
	assert.Equal(t, "dune", books[0].Title)
}

func TestSortSentencesByPage(t *testing.T) {
	sentences := []*model.Sentence{
		{ID: "nil-old", CreatedAt: at(1)},
		{ID: "p5", Page: page(5), CreatedAt: at(1)},
		{ID: "p2-old", Page: page(2), CreatedAt: at(1)},
		{ID: "nil-new", CreatedAt: at(9)},
		{ID: "p2-new", Page: page(2), CreatedAt: at(4)},
	}
	got := SortSentences(sentences, model.SentenceSortPage)
	assert.Equal(t, []string{"p2-new", "p2-old", "p5", "nil-old", "nil-new"}, sentenceIDs(got))
	require.Equal(t, "nil-old", sentences[0].ID)
}

func TestSortSentencesByCreatedAt(t *testing.T) {
	sentences := []*model.Sentence{
		{ID: "a", CreatedAt: at(1)},
		{ID: "b", CreatedAt: at(3)},
		{ID: "c", CreatedAt: at(3)},
		{ID: "d", CreatedAt: at(2)},
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, sentenceIDs(SortSentences(sentences, model.SentenceSortCreatedAt)))
}
