package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/herhimstory-source/Reading-Log/internal/http/response"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/remote"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxBodySize = 10 << 20

func (h *Handler) fetchAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.db.ListBooks(r.Context())
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	sentences, err := h.db.ListSentences(r.Context())
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, remote.Snapshot{Books: books, Sentences: sentences})
}

// dispatch handles the POST actions. The body is JSON whatever the declared
// content type, since clients send text/plain.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		response.BadRequest(w, r, errors.Wrap(err, "unable to read request body"))
		return
	}
	var req remote.Request
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(w, r, errors.New("Invalid JSON body"))
		return
	}

	action := strings.ToUpper(strings.TrimSpace(req.Action))
	log.Debug("Dispatch action", zap.String("action", action))

	switch action {
	case remote.ActionAddBook:
		var book model.Book
		if err := decodeData(req.Data, &book); err != nil {
			response.BadRequest(w, r, err)
			return
		}
		if err := h.db.AddBook(r.Context(), &book); err != nil {
			writeError(w, r, err)
			return
		}
		response.Success(w, r, "Book added successfully", &book)
	case remote.ActionAddSentence:
		var sentence model.Sentence
		if err := decodeData(req.Data, &sentence); err != nil {
			response.BadRequest(w, r, err)
			return
		}
		if err := h.db.AddSentence(r.Context(), &sentence); err != nil {
			writeError(w, r, err)
			return
		}
		response.Success(w, r, "Sentence added successfully", &sentence)
	case remote.ActionDeleteBook:
		var data remote.DeleteBookData
		if err := decodeData(req.Data, &data); err != nil {
			response.BadRequest(w, r, err)
			return
		}
		n, err := h.db.DeleteBook(r.Context(), data.BookID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.Success(w, r, fmt.Sprintf("Book and %d related sentences deleted successfully", n), nil)
	case remote.ActionDeleteSentence:
		var data remote.DeleteSentenceData
		if err := decodeData(req.Data, &data); err != nil {
			response.BadRequest(w, r, err)
			return
		}
		if err := h.db.DeleteSentence(r.Context(), data.SentenceID); err != nil {
			writeError(w, r, err)
			return
		}
		response.Success(w, r, "Sentence deleted successfully", nil)
	default:
		response.BadRequest(w, r, errors.Errorf("Invalid action: %s", req.Action))
	}
}

func decodeData(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errors.New("Missing data")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "Invalid data")
	}
	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(w, r, err)
	case errors.As(err, &notFoundErr):
		response.NotFound(w, r, err)
	default:
		response.ServerError(w, r, err)
	}
}
