package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRemote is an in-memory stand-in for the spreadsheet endpoint.
type memoryRemote struct {
	mu        sync.Mutex
	books     []*model.Book
	sentences []*model.Sentence
	failNext  bool
	calls     int
}

func (m *memoryRemote) fail(action string) error {
	m.calls++
	if m.failNext {
		return &model.SyncError{Action: action, Err: errors.New("endpoint down")}
	}
	return nil
}

func (m *memoryRemote) FetchAll(context.Context) ([]*model.Book, []*model.Sentence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FETCH"); err != nil {
		return nil, nil, err
	}
	return append([]*model.Book(nil), m.books...), append([]*model.Sentence(nil), m.sentences...), nil
}

func (m *memoryRemote) CreateBook(_ context.Context, b *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ADD_BOOK"); err != nil {
		return err
	}
	m.books = append(m.books, b)
	return nil
}

func (m *memoryRemote) CreateSentence(_ context.Context, s *model.Sentence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ADD_SENTENCE"); err != nil {
		return err
	}
	m.sentences = append(m.sentences, s)
	return nil
}

func (m *memoryRemote) DeleteBook(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail("DELETE_BOOK")
}

func (m *memoryRemote) DeleteSentence(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail("DELETE_SENTENCE")
}

func newTestService(remote *memoryRemote) *Service {
	s := New(remote, Settings{Locale: "en", DateLayout: "1/2/2006"})
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	s.now = func() time.Time { return time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC) }
	s.placeholder = func() string { return "https://picsum.photos/seed/test/400/600" }
	return s
}

func page(n int) *int {
	return &n
}

func TestNewFromOptionsNeedsEndpoint(t *testing.T) {
	o := config.GetDefaultOptions()
	o.EndpointURL = config.EndpointPlaceholder
	_, err := NewFromOptions(o)
	var validationErr *model.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	o.EndpointURL = "http://127.0.0.1:8080/exec"
	s, err := NewFromOptions(o)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLoadDropsOrphans(t *testing.T) {
	remote := &memoryRemote{
		books:     []*model.Book{{ID: "b1", Title: "Dune", Author: "Herbert"}},
		sentences: []*model.Sentence{{ID: "s1", BookID: "b1", Text: "x"}, {ID: "s2", BookID: "gone", Text: "y"}},
	}
	s := newTestService(remote)
	require.NoError(t, s.Load(context.Background()))

	assert.Len(t, s.Books(model.BookSortCreatedAt), 1)
	sentences, err := s.Sentences("b1", model.SentenceSortPage)
	require.NoError(t, err)
	assert.Len(t, sentences, 1)

	remote.failNext = true
	var syncErr *model.SyncError
	assert.True(t, errors.As(s.Load(context.Background()), &syncErr))
	assert.Len(t, s.Books(model.BookSortCreatedAt), 1)
}

func TestAddBook(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)

	_, err := s.AddBook(context.Background(), model.BookInput{Title: " ", Author: "Herbert"})
	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Zero(t, remote.calls)

	_, err = s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert", CoverImage: "ftp://x"})
	require.True(t, errors.As(err, &validationErr))

	b, err := s.AddBook(context.Background(), model.BookInput{Title: " Dune ", Author: "Herbert", Publisher: "  ", ISBN: " 978 "})
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Empty(t, b.Publisher)
	assert.Equal(t, "978", b.ISBN)
	assert.Equal(t, "https://picsum.photos/seed/test/400/600", b.CoverImage)
	assert.Len(t, remote.books, 1)

	got, err := s.Book(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestAddBookRemoteFailureLeavesStore(t *testing.T) {
	remote := &memoryRemote{failNext: true}
	s := newTestService(remote)

	_, err := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert", CoverImage: "data:image/webp;base64,AAAA"})
	var syncErr *model.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Empty(t, s.Books(model.BookSortTitle))
}

func TestAddSentence(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)
	b, err := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	_, err = s.AddSentence(context.Background(), model.SentenceInput{BookID: "missing", Text: "x"})
	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))

	_, err = s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "x", Page: page(0)})
	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))

	sen, err := s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: " Fear is the mind-killer. ", Page: page(8)})
	require.NoError(t, err)
	assert.Equal(t, "Fear is the mind-killer.", sen.Text)
	assert.Len(t, remote.sentences, 1)

	remote.failNext = true
	_, err = s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "another"})
	require.Error(t, err)
	list, err := s.Sentences(b.ID, model.SentenceSortCreatedAt)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.Sentences("missing", model.SentenceSortPage)
	assert.True(t, errors.As(err, &notFound))
}

func TestDeleteBookCascadesAndReverts(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)
	dune, err := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	emma, err := s.AddBook(context.Background(), model.BookInput{Title: "Emma", Author: "Austen"})
	require.NoError(t, err)
	_, err = s.AddSentence(context.Background(), model.SentenceInput{BookID: dune.ID, Text: "a"})
	require.NoError(t, err)

	remote.failNext = true
	require.Error(t, s.DeleteBook(context.Background(), dune.ID))
	books := s.Books(model.BookSortCreatedAt)
	require.Len(t, books, 2)
	list, _ := s.Sentences(dune.ID, model.SentenceSortPage)
	assert.Len(t, list, 1)

	remote.failNext = false
	require.NoError(t, s.DeleteBook(context.Background(), dune.ID))
	var notFound *model.NotFoundError
	_, err = s.Book(dune.ID)
	assert.True(t, errors.As(err, &notFound))
	for _, sen := range s.store.Sentences() {
		assert.NotEqual(t, dune.ID, sen.BookID)
	}
	_, err = s.Book(emma.ID)
	assert.NoError(t, err)

	assert.True(t, errors.As(s.DeleteBook(context.Background(), dune.ID), &notFound))
}

func TestDeleteSentenceReverts(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)
	b, _ := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert"})
	first, _ := s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "a"})
	_, _ = s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "b"})

	remote.failNext = true
	require.Error(t, s.DeleteSentence(context.Background(), first.ID))
	all := s.store.Sentences()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	remote.failNext = false
	require.NoError(t, s.DeleteSentence(context.Background(), first.ID))
	assert.Len(t, s.store.Sentences(), 1)

	var notFound *model.NotFoundError
	assert.True(t, errors.As(s.DeleteSentence(context.Background(), first.ID), &notFound))
}

func TestExportImportRoundTrip(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)

	var empty bytes.Buffer
	ok, err := s.ExportWorkbook(&empty)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, empty.Len())

	b, _ := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert"})
	_, _ = s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "Fear is the mind-killer.", Page: page(8)})

	var buf bytes.Buffer
	ok, err = s.ExportWorkbook(&buf)
	require.NoError(t, err)
	require.True(t, ok)
	data := buf.Bytes()

	// importing our own export adds nothing
	res, err := s.Import(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, res.Empty())

	// a fresh session takes everything
	other := newTestService(&memoryRemote{})
	res, err = other.Import(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Books)
	assert.Equal(t, 1, res.Sentences)

	batch, err := workbook.Read(bytes.NewReader(data))
	require.NoError(t, err)
	res, err = other.ImportBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestImportRejectsBadFile(t *testing.T) {
	remote := &memoryRemote{}
	s := newTestService(remote)
	_, err := s.Import(context.Background(), bytes.NewReader([]byte("garbage")))
	var formatErr *model.FormatError
	assert.True(t, errors.As(err, &formatErr))
	assert.Zero(t, remote.calls)
}

func TestSearchAndEPUB(t *testing.T) {
	s := newTestService(&memoryRemote{})
	b, _ := s.AddBook(context.Background(), model.BookInput{Title: "Dune", Author: "Herbert"})
	_, _ = s.AddSentence(context.Background(), model.SentenceInput{BookID: b.ID, Text: "Fear is the mind-killer."})

	assert.Len(t, s.Search("MIND", model.SearchSentence).Sentences, 1)
	assert.Len(t, s.Search("herb", model.SearchAuthor).Books, 1)
	assert.Zero(t, s.Search(" ", model.SearchTitle).Len())

	var buf bytes.Buffer
	ok, err := s.ExportEPUB(&buf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, buf.Len())
}
