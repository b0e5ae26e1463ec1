package validator // import "github.com/herhimstory-source/Reading-Log/internal/validator"

import (
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/model"
)

func ValidateBookInput(book *model.BookInput) error {
	if book == nil {
		return &model.ValidationError{Message: "book is nil"}
	}
	if strings.TrimSpace(book.Title) == "" {
		return &model.ValidationError{Field: "title", Message: "title is empty"}
	}
	if strings.TrimSpace(book.Author) == "" {
		return &model.ValidationError{Field: "author", Message: "author is empty"}
	}
	return nil
}

func ValidateSentenceInput(sentence *model.SentenceInput) error {
	if sentence == nil {
		return &model.ValidationError{Message: "sentence is nil"}
	}
	if strings.TrimSpace(sentence.BookID) == "" {
		return &model.ValidationError{Field: "bookId", Message: "book id is empty"}
	}
	if strings.TrimSpace(sentence.Text) == "" {
		return &model.ValidationError{Field: "text", Message: "sentence text is empty"}
	}
	if sentence.Page != nil && *sentence.Page < 1 {
		return &model.ValidationError{Field: "page", Message: "page must be a positive number"}
	}
	return nil
}
