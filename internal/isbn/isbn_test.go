package isbn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"978-0-441-17271-9", "9780441172719", true},
		{" 0 441 17271 7 ", "0441172717", true},
		{"080442957x", "080442957X", true},
		{"9770441172719", "", false},
		{"12345", "", false},
		{"abcdefghij", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Validate(tt.in)
			if !tt.ok {
				var validationErr *model.ValidationError
				assert.True(t, errors.As(err, &validationErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "isbn:9780441172719", r.URL.Query().Get("q"))
		io.WriteString(w, `{"totalItems":1,"items":[{"volumeInfo":{
			"title":"Dune","authors":["Frank Herbert","Someone Else"],"publisher":"Chilton",
			"imageLinks":{"smallThumbnail":"http://img/small"}}}]}`)
	}))
	defer srv.Close()

	v, err := NewClient(srv.URL+"/", time.Second).Lookup(context.Background(), "978-0441172719")
	require.NoError(t, err)
	assert.Equal(t, &Volume{
		Title:      "Dune",
		Author:     "Frank Herbert, Someone Else",
		Publisher:  "Chilton",
		ISBN:       "9780441172719",
		CoverImage: "http://img/small",
	}, v)
}

func TestLookupNoAuthors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":[{"volumeInfo":{"title":"Anon","imageLinks":{"thumbnail":"http://img/t","smallThumbnail":"http://img/s"}}}]}`)
	}))
	defer srv.Close()

	v, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "0441172717")
	require.NoError(t, err)
	assert.Equal(t, unknownAuthor, v.Author)
	assert.Equal(t, "http://img/t", v.CoverImage)
}

func TestLookupFailures(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"totalItems":0}`)
	}))
	defer notFound.Close()

	_, err := NewClient(notFound.URL, time.Second).Lookup(context.Background(), "0441172717")
	var notFoundErr *model.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	_, err = NewClient(broken.URL, time.Second).Lookup(context.Background(), "0441172717")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	_, err = NewClient(broken.URL, time.Second).Lookup(context.Background(), "nope")
	var validationErr *model.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
