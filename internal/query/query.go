package query // import "github.com/herhimstory-source/Reading-Log/internal/query"

import (
	"sort"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Results holds the matches of one search. Only one side is filled,
// depending on the search type.
type Results struct {
	Type      model.SearchType
	Books     []*model.Book
	Sentences []*model.Sentence
}

func (r Results) Len() int {
	return len(r.Books) + len(r.Sentences)
}

// Search runs a case-insensitive substring match of q against the field
// selected by typ. A blank query matches nothing.
func Search(books []*model.Book, sentences []*model.Sentence, q string, typ model.SearchType) Results {
	res := Results{Type: typ}
	if typ == model.SearchSentence {
		res.Sentences = SearchSentences(sentences, q)
	} else {
		res.Books = SearchBooks(books, q, typ)
	}
	return res
}

func SearchSentences(sentences []*model.Sentence, q string) []*model.Sentence {
	needle, ok := needleOf(q)
	if !ok {
		return nil
	}
	var out []*model.Sentence
	for _, s := range sentences {
		if contains(s.Text, needle) {
			out = append(out, s)
		}
	}
	return out
}

func SearchBooks(books []*model.Book, q string, typ model.SearchType) []*model.Book {
	needle, ok := needleOf(q)
	if !ok {
		return nil
	}
	var out []*model.Book
	for _, b := range books {
		if contains(bookField(b, typ), needle) {
			out = append(out, b)
		}
	}
	return out
}

func bookField(b *model.Book, typ model.SearchType) string {
	switch typ {
	case model.SearchTitle:
		return b.Title
	case model.SearchAuthor:
		return b.Author
	case model.SearchPublisher:
		return b.Publisher
	case model.SearchISBN:
		return b.ISBN
	default:
		return ""
	}
}

// The query itself is not trimmed, only checked for content.
func needleOf(q string) (string, bool) {
	if strings.TrimSpace(q) == "" {
		return "", false
	}
	return strings.ToLower(q), true
}

func contains(field, needle string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), needle)
}

// SortBooks returns a sorted copy of books. Title and author compare with
// the collation rules of locale; createdAt sorts newest first.
func SortBooks(books []*model.Book, by model.BookSort, locale string) []*model.Book {
	out := append([]*model.Book(nil), books...)
	switch by {
	case model.BookSortTitle, model.BookSortAuthor:
		c := newCollator(locale)
		key := func(b *model.Book) string { return b.Title }
		if by == model.BookSortAuthor {
			key = func(b *model.Book) string { return b.Author }
		}
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(key(out[i]), key(out[j])) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// SortSentences returns a sorted copy of sentences. By page, sentences
// without a page come last and equal pages show the newest first.
func SortSentences(sentences []*model.Sentence, by model.SentenceSort) []*model.Sentence {
	out := append([]*model.Sentence(nil), sentences...)
	switch by {
	case model.SentenceSortPage:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			switch {
			case a.Page == nil && b.Page == nil:
				return false
			case a.Page == nil:
				return false
			case b.Page == nil:
				return true
			case *a.Page != *b.Page:
				return *a.Page < *b.Page
			default:
				return a.CreatedAt.After(b.CreatedAt)
			}
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

func newCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag, collate.IgnoreCase)
}
