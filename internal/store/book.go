package store

import (
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
)

var ErrDuplicateID = errors.New("duplicate id")

func (s *Store) GetBook(id string) (*model.Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// AddBook appends book, refusing an id that is already present.
func (s *Store) AddBook(book *model.Book) error {
	if _, ok := s.GetBook(book.ID); ok {
		return errors.Wrapf(ErrDuplicateID, "book %s", book.ID)
	}
	s.books = append(s.books, book)
	return nil
}

// RemoveBook removes the book and every sentence referencing it. This is the
// only place the cascade is enforced.
func (s *Store) RemoveBook(id string) (*model.Book, []*model.Sentence, error) {
	idx := -1
	for i, b := range s.books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, &model.NotFoundError{Kind: "book", ID: id}
	}
	removed := s.books[idx]
	s.books = append(s.books[:idx:idx], s.books[idx+1:]...)

	var cascaded []*model.Sentence
	kept := s.sentences[:0:0]
	for _, sen := range s.sentences {
		if sen.BookID == id {
			cascaded = append(cascaded, sen)
			continue
		}
		kept = append(kept, sen)
	}
	s.sentences = kept
	return removed, cascaded, nil
}
