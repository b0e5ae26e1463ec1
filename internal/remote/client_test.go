package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllDecodesCells(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"books":[{"id":"b1","title":1984,"author":"Orwell","coverImage":"","createdAt":"2024-01-02T03:04:05.000Z"}],
			"sentences":[{"id":"s1","bookId":"b1","text":"War is peace","page":"","createdAt":""},
			             {"id":"s2","bookId":"b1","text":"Ignorance is strength","page":12,"createdAt":""}]
		}`)
	}))
	defer srv.Close()

	books, sentences, err := NewClient(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)
	assert.Equal(t, 2024, books[0].CreatedAt.Year())
	require.Len(t, sentences, 2)
	assert.Nil(t, sentences[0].Page)
	require.NotNil(t, sentences[1].Page)
	assert.Equal(t, 12, *sentences[1].Page)
}

func TestFetchAllEmptyCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	books, sentences, err := NewClient(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.Empty(t, sentences)
}

func TestFetchAllBrotli(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "br")
		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		io.WriteString(bw, `{"books":[{"id":"b1","title":"Dune","author":"Herbert"}],"sentences":[]}`)
		bw.Close()
		w.Header().Set("Content-Encoding", "br")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	books, _, err := NewClient(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestFetchAllErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"error","message":"Server error","error":{"message":"sheet missing"}}`)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, time.Second).FetchAll(context.Background())
	var syncErr *model.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, ActionFetch, syncErr.Action)
	assert.Contains(t, err.Error(), "sheet missing")
}

func TestPostActionWireFormat(t *testing.T) {
	var got Request
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"status":"success"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.DeleteBook(context.Background(), "b1"))
	assert.Equal(t, postContentType, contentType)
	assert.Equal(t, ActionDeleteBook, got.Action)
	assert.JSONEq(t, `{"bookId":"b1"}`, string(got.Data))

	require.NoError(t, c.DeleteSentence(context.Background(), "s9"))
	assert.Equal(t, ActionDeleteSentence, got.Action)
	assert.JSONEq(t, `{"sentenceId":"s9"}`, string(got.Data))

	page := 3
	s := &model.Sentence{ID: "s1", BookID: "b1", Text: "hello", Page: &page}
	require.NoError(t, c.CreateSentence(context.Background(), s))
	assert.Equal(t, ActionAddSentence, got.Action)
	var sent model.Sentence
	require.NoError(t, json.Unmarshal(got.Data, &sent))
	assert.Equal(t, "hello", sent.Text)
	assert.Equal(t, 3, *sent.Page)
}

func TestPostActionFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error status field", http.StatusOK, `{"status":"error","message":"Book not found"}`, "Book not found"},
		{"missing status", http.StatusOK, `{}`, "endpoint reported an error"},
		{"non 2xx", http.StatusBadGateway, `upstream down`, "upstream down"},
		{"non 2xx envelope", http.StatusBadRequest, `{"status":"error","message":"Unknown action"}`, "Unknown action"},
		{"bad json", http.StatusOK, `not json`, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).CreateBook(context.Background(), &model.Book{ID: "b1"})
			var syncErr *model.SyncError
			require.True(t, errors.As(err, &syncErr))
			assert.Equal(t, ActionAddBook, syncErr.Action)
			assert.Contains(t, err.Error(), tt.want)
			if tt.status != http.StatusOK {
				assert.Equal(t, tt.status, syncErr.Status)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, time.Second).DeleteBook(context.Background(), "b1")
	var syncErr *model.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Zero(t, syncErr.Status)
}
