package app

import (
	"context"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/query"
	"github.com/herhimstory-source/Reading-Log/internal/util"
	"github.com/herhimstory-source/Reading-Log/internal/validator"
	"go.uber.org/zap"
)

var coverPrefixes = []string{"http://", "https://", "data:image/"}

func (s *Service) Books(sort model.BookSort) []*model.Book {
	return query.SortBooks(s.store.Books(), sort, s.settings.Locale)
}

func (s *Service) Book(id string) (*model.Book, error) {
	b, ok := s.store.GetBook(id)
	if !ok {
		return nil, &model.NotFoundError{Kind: "book", ID: id}
	}
	return b, nil
}

// AddBook creates the book remotely and only then adds it to the store.
func (s *Service) AddBook(ctx context.Context, in model.BookInput) (*model.Book, error) {
	if err := validator.ValidateBookInput(&in); err != nil {
		return nil, err
	}
	coverImage := strings.TrimSpace(in.CoverImage)
	if coverImage == "" {
		coverImage = s.placeholder()
	} else if !util.HasPrefixes(coverImage, coverPrefixes...) {
		return nil, &model.ValidationError{Field: "coverImage", Message: "cover must be an http(s) or image data URI"}
	}

	book := &model.Book{
		ID:         s.newID(),
		Title:      strings.TrimSpace(in.Title),
		Author:     strings.TrimSpace(in.Author),
		Publisher:  strings.TrimSpace(in.Publisher),
		ISBN:       strings.TrimSpace(in.ISBN),
		CoverImage: coverImage,
		CreatedAt:  s.now(),
	}
	if err := s.remote.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	if err := s.store.AddBook(book); err != nil {
		return nil, err
	}
	log.Info("Added book", zap.String("id", book.ID), zap.String("title", book.Title))
	return book, nil
}

// DeleteBook removes the book and its sentences locally, then remotely.
// The local removal is undone if the remote delete fails.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	snap := s.store.Snapshot()
	_, cascaded, err := s.store.RemoveBook(id)
	if err != nil {
		return err
	}
	if err := s.remote.DeleteBook(ctx, id); err != nil {
		s.store.Restore(snap)
		log.Warn("Reverted book delete", zap.String("id", id), zap.Error(err))
		return err
	}
	log.Info("Deleted book", zap.String("id", id), zap.Int("sentences", len(cascaded)))
	return nil
}
