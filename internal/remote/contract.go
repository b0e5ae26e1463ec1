package remote // import "github.com/herhimstory-source/Reading-Log/internal/remote"

import (
	"context"
	"encoding/json"

	"github.com/herhimstory-source/Reading-Log/internal/model"
)

const (
	ActionFetch          = "FETCH"
	ActionAddBook        = "ADD_BOOK"
	ActionAddSentence    = "ADD_SENTENCE"
	ActionDeleteBook     = "DELETE_BOOK"
	ActionDeleteSentence = "DELETE_SENTENCE"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Syncer is the remote persistence contract over the Books and Sentences
// collections. Every failure is a *model.SyncError and nothing is retried.
type Syncer interface {
	FetchAll(ctx context.Context) ([]*model.Book, []*model.Sentence, error)
	CreateBook(ctx context.Context, book *model.Book) error
	CreateSentence(ctx context.Context, sentence *model.Sentence) error
	// DeleteBook cascades to the book's sentences on the remote side.
	DeleteBook(ctx context.Context, bookID string) error
	DeleteSentence(ctx context.Context, sentenceID string) error
}

// Request is the POST body understood by the endpoint.
type Request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type DeleteBookData struct {
	BookID string `json:"bookId"`
}

type DeleteSentenceData struct {
	SentenceID string `json:"sentenceId"`
}

// Response is the envelope returned for writes, and for reads that fail.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// Snapshot is the body of a successful read.
type Snapshot struct {
	Books     []*model.Book     `json:"books"`
	Sentences []*model.Sentence `json:"sentences"`
}
