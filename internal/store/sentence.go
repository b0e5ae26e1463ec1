package store

import (
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
)

func (s *Store) GetSentence(id string) (*model.Sentence, bool) {
	for _, sen := range s.sentences {
		if sen.ID == id {
			return sen, true
		}
	}
	return nil, false
}

// AddSentence appends sentence. Its book must already be in the store.
func (s *Store) AddSentence(sentence *model.Sentence) error {
	if _, ok := s.GetBook(sentence.BookID); !ok {
		return &model.NotFoundError{Kind: "book", ID: sentence.BookID}
	}
	if _, ok := s.GetSentence(sentence.ID); ok {
		return errors.Wrapf(ErrDuplicateID, "sentence %s", sentence.ID)
	}
	s.sentences = append(s.sentences, sentence)
	return nil
}

func (s *Store) RemoveSentence(id string) (*model.Sentence, error) {
	for i, sen := range s.sentences {
		if sen.ID == id {
			s.sentences = append(s.sentences[:i:i], s.sentences[i+1:]...)
			return sen, nil
		}
	}
	return nil, &model.NotFoundError{Kind: "sentence", ID: id}
}

// ListSentencesByBook returns the book's sentences in insertion order.
func (s *Store) ListSentencesByBook(bookID string) []*model.Sentence {
	list := make([]*model.Sentence, 0)
	for _, sen := range s.sentences {
		if sen.BookID == bookID {
			list = append(list, sen)
		}
	}
	return list
}
