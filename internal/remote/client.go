package remote

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The hosted script backend only accepts simple POST requests.
const postContentType = "text/plain;charset=utf-8"

const maxErrorBody = 4 << 10

// Client calls the spreadsheet endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Syncer = (*Client)(nil)

// NewClient constructs a client for endpoint. A zero timeout means none.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchAll(ctx context.Context) ([]*model.Book, []*model.Sentence, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, nil, &model.SyncError{Action: ActionFetch, Err: err}
	}

	var out struct {
		Snapshot
		Status  string       `json:"status"`
		Message string       `json:"message"`
		Error   *ErrorDetail `json:"error"`
	}
	if err := c.do(req, ActionFetch, &out); err != nil {
		return nil, nil, err
	}
	if out.Status == StatusError {
		return nil, nil, &model.SyncError{Action: ActionFetch, Err: envelopeError(out.Message, out.Error)}
	}
	if out.Books == nil {
		out.Books = []*model.Book{}
	}
	if out.Sentences == nil {
		out.Sentences = []*model.Sentence{}
	}
	return out.Books, out.Sentences, nil
}

func (c *Client) CreateBook(ctx context.Context, book *model.Book) error {
	return c.postAction(ctx, ActionAddBook, book)
}

func (c *Client) CreateSentence(ctx context.Context, sentence *model.Sentence) error {
	return c.postAction(ctx, ActionAddSentence, sentence)
}

func (c *Client) DeleteBook(ctx context.Context, bookID string) error {
	return c.postAction(ctx, ActionDeleteBook, DeleteBookData{BookID: bookID})
}

func (c *Client) DeleteSentence(ctx context.Context, sentenceID string) error {
	return c.postAction(ctx, ActionDeleteSentence, DeleteSentenceData{SentenceID: sentenceID})
}

func (c *Client) postAction(ctx context.Context, action string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return &model.SyncError{Action: action, Err: errors.Wrap(err, "encode payload")}
	}
	body, err := json.Marshal(Request{Action: action, Data: payload})
	if err != nil {
		return &model.SyncError{Action: action, Err: errors.Wrap(err, "encode request")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &model.SyncError{Action: action, Err: err}
	}
	req.Header.Set("Content-Type", postContentType)

	var resp Response
	if err := c.do(req, action, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return &model.SyncError{Action: action, Err: envelopeError(resp.Message, resp.Error)}
	}
	return nil
}

func (c *Client) do(req *http.Request, action string, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Remote call failed", zap.String("action", action), zap.Error(err))
		return &model.SyncError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	log.Debug("Remote call",
		zap.String("action", action),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	body, err := decodedBody(resp)
	if err != nil {
		return &model.SyncError{Action: action, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Response
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &env) == nil && (env.Message != "" || env.Error != nil) {
			msg = envelopeError(env.Message, env.Error).Error()
		}
		if msg == "" {
			msg = resp.Status
		}
		return &model.SyncError{Action: action, Status: resp.StatusCode, Err: errors.New(msg)}
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return &model.SyncError{Action: action, Status: resp.StatusCode, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}

func decodedBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		return gzip.NewReader(resp.Body)
	default:
		return resp.Body, nil
	}
}

func envelopeError(message string, detail *ErrorDetail) error {
	switch {
	case detail != nil && detail.Message != "" && message != "":
		return fmt.Errorf("%s: %s", message, detail.Message)
	case detail != nil && detail.Message != "":
		return errors.New(detail.Message)
	case message != "":
		return errors.New(message)
	default:
		return errors.New("endpoint reported an error")
	}
}
