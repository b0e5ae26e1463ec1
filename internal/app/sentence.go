package app

import (
	"context"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/query"
	"github.com/herhimstory-source/Reading-Log/internal/validator"
	"go.uber.org/zap"
)

// Sentences lists the sentences of one book.
func (s *Service) Sentences(bookID string, sort model.SentenceSort) ([]*model.Sentence, error) {
	if _, err := s.Book(bookID); err != nil {
		return nil, err
	}
	return query.SortSentences(s.store.ListSentencesByBook(bookID), sort), nil
}

func (s *Service) AddSentence(ctx context.Context, in model.SentenceInput) (*model.Sentence, error) {
	if err := validator.ValidateSentenceInput(&in); err != nil {
		return nil, err
	}
	bookID := strings.TrimSpace(in.BookID)
	if _, err := s.Book(bookID); err != nil {
		return nil, err
	}

	sentence := &model.Sentence{
		ID:        s.newID(),
		BookID:    bookID,
		Text:      strings.TrimSpace(in.Text),
		Page:      in.Page,
		CreatedAt: s.now(),
	}
	if err := s.remote.CreateSentence(ctx, sentence); err != nil {
		return nil, err
	}
	if err := s.store.AddSentence(sentence); err != nil {
		return nil, err
	}
	log.Info("Added sentence", zap.String("id", sentence.ID), zap.String("book", bookID))
	return sentence, nil
}

func (s *Service) DeleteSentence(ctx context.Context, id string) error {
	snap := s.store.Snapshot()
	if _, err := s.store.RemoveSentence(id); err != nil {
		return err
	}
	if err := s.remote.DeleteSentence(ctx, id); err != nil {
		s.store.Restore(snap)
		log.Warn("Reverted sentence delete", zap.String("id", id), zap.Error(err))
		return err
	}
	log.Info("Deleted sentence", zap.String("id", id))
	return nil
}
