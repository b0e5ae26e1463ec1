package store // import "github.com/herhimstory-source/Reading-Log/internal/store"

import (
	"github.com/herhimstory-source/Reading-Log/internal/model"
)

// Store holds the session's books and sentences in insertion order.
//
// Store is single-writer: callers serialize mutations and no locking is done.
type Store struct {
	books     []*model.Book
	sentences []*model.Sentence
}

func NewStore() *Store {
	return &Store{}
}

// Reset replaces the whole collection, typically with a remote fetch.
// Sentences whose book is not among books are dropped and returned.
func (s *Store) Reset(books []*model.Book, sentences []*model.Sentence) []*model.Sentence {
	s.books = make([]*model.Book, 0, len(books))
	ids := make(map[string]struct{}, len(books))
	for _, b := range books {
		if _, dup := ids[b.ID]; dup {
			continue
		}
		ids[b.ID] = struct{}{}
		s.books = append(s.books, b)
	}

	s.sentences = make([]*model.Sentence, 0, len(sentences))
	seen := make(map[string]struct{}, len(sentences))
	var orphans []*model.Sentence
	for _, sen := range sentences {
		if _, ok := ids[sen.BookID]; !ok {
			orphans = append(orphans, sen)
			continue
		}
		if _, dup := seen[sen.ID]; dup {
			continue
		}
		seen[sen.ID] = struct{}{}
		s.sentences = append(s.sentences, sen)
	}
	return orphans
}

// Books returns a copy of the book sequence.
func (s *Store) Books() []*model.Book {
	return append([]*model.Book(nil), s.books...)
}

// Sentences returns a copy of the sentence sequence.
func (s *Store) Sentences() []*model.Sentence {
	return append([]*model.Sentence(nil), s.sentences...)
}

// Snapshot captures the current sequences so a failed remote delete can be
// reverted with Restore, original positions included.
type Snapshot struct {
	books     []*model.Book
	sentences []*model.Sentence
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{books: s.Books(), sentences: s.Sentences()}
}

func (s *Store) Restore(snap Snapshot) {
	s.books = append([]*model.Book(nil), snap.books...)
	s.sentences = append([]*model.Sentence(nil), snap.sentences...)
}

// RemoveIDs drops every listed book and sentence, cascading to sentences of
// the listed books. It is the inverse of a batch append.
func (s *Store) RemoveIDs(bookIDs, sentenceIDs []string) {
	books := toSet(bookIDs)
	sentences := toSet(sentenceIDs)

	keptBooks := s.books[:0:0]
	for _, b := range s.books {
		if _, ok := books[b.ID]; !ok {
			keptBooks = append(keptBooks, b)
		}
	}
	s.books = keptBooks

	keptSentences := s.sentences[:0:0]
	for _, sen := range s.sentences {
		_, gone := sentences[sen.ID]
		_, orphaned := books[sen.BookID]
		if !gone && !orphaned {
			keptSentences = append(keptSentences, sen)
		}
	}
	s.sentences = keptSentences
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
