package model

import (
	"encoding/json"
	"time"
)

type Sentence struct {
	ID     string `json:"id"`
	BookID string `json:"bookId"`
	Text   string `json:"text"`
	// Page is nil when the page is unknown.
	Page      *int      `json:"page"`
	CreatedAt time.Time `json:"createdAt"`
}

type SentenceInput struct {
	BookID string
	Text   string
	Page   *int
}

type sentenceWire struct {
	ID        cell `json:"id"`
	BookID    cell `json:"bookId"`
	Text      cell `json:"text"`
	Page      cell `json:"page"`
	CreatedAt cell `json:"createdAt"`
}

func (s *Sentence) UnmarshalJSON(data []byte) error {
	var w sentenceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	createdAt, err := w.CreatedAt.time()
	if err != nil {
		return err
	}
	*s = Sentence{
		ID:        string(w.ID),
		BookID:    string(w.BookID),
		Text:      string(w.Text),
		Page:      ParsePage(string(w.Page)),
		CreatedAt: createdAt,
	}
	return nil
}
