package model // import "github.com/herhimstory-source/Reading-Log/internal/model"

import (
	"encoding/json"
	"time"
)

type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Publisher  string    `json:"publisher,omitempty"`
	ISBN       string    `json:"isbn,omitempty"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookInput is what a user supplies when adding a single book.
type BookInput struct {
	Title     string
	Author    string
	Publisher string
	ISBN      string
	// CoverImage is optional, a placeholder is used when empty.
	CoverImage string
}

type bookWire struct {
	ID         cell `json:"id"`
	Title      cell `json:"title"`
	Author     cell `json:"author"`
	Publisher  cell `json:"publisher"`
	ISBN       cell `json:"isbn"`
	CoverImage cell `json:"coverImage"`
	CreatedAt  cell `json:"createdAt"`
}

// UnmarshalJSON accepts the loosely typed cell values a spreadsheet backend
// returns: numbers where strings are expected and empty strings for blanks.
func (b *Book) UnmarshalJSON(data []byte) error {
	var w bookWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	createdAt, err := w.CreatedAt.time()
	if err != nil {
		return err
	}
	*b = Book{
		ID:         string(w.ID),
		Title:      string(w.Title),
		Author:     string(w.Author),
		Publisher:  string(w.Publisher),
		ISBN:       string(w.ISBN),
		CoverImage: string(w.CoverImage),
		CreatedAt:  createdAt,
	}
	return nil
}
