package isbn // import "github.com/herhimstory-source/Reading-Log/internal/isbn"

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const unknownAuthor = "Unknown Author"

var pattern = regexp.MustCompile(`^(97(8|9))?\d{9}(\d|X)$`)

// Normalize strips hyphens and whitespace and upper-cases a check digit x.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	if strings.HasSuffix(s, "x") {
		s = strings.TrimSuffix(s, "x") + "X"
	}
	return s
}

// Validate normalizes s and checks it is an ISBN-10 or ISBN-13.
func Validate(s string) (string, error) {
	n := Normalize(s)
	if !pattern.MatchString(n) {
		return "", &model.ValidationError{Field: "isbn", Message: "must be 10 or 13 digits"}
	}
	return n, nil
}

// Volume is the subset of book metadata a lookup can fill in.
type Volume struct {
	Title      string
	Author     string
	Publisher  string
	ISBN       string
	CoverImage string
}

// Client looks up books by ISBN on the Google Books API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title      string   `json:"title"`
			Authors    []string `json:"authors"`
			Publisher  string   `json:"publisher"`
			ImageLinks struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (c *Client) Lookup(ctx context.Context, raw string) (*Volume, error) {
	isbn, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + "/volumes?q=" + url.QueryEscape("isbn:"+isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "book lookup")
	}
	defer resp.Body.Close()
	log.Debug("Book lookup", zap.String("isbn", isbn), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("book lookup failed: %s", resp.Status)
	}

	var out volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode book lookup")
	}
	if len(out.Items) == 0 {
		return nil, &model.NotFoundError{Kind: "isbn", ID: isbn}
	}

	info := out.Items[0].VolumeInfo
	v := &Volume{
		Title:      info.Title,
		Author:     strings.Join(info.Authors, ", "),
		Publisher:  info.Publisher,
		ISBN:       isbn,
		CoverImage: info.ImageLinks.Thumbnail,
	}
	if v.Author == "" {
		v.Author = unknownAuthor
	}
	if v.CoverImage == "" {
		v.CoverImage = info.ImageLinks.SmallThumbnail
	}
	return v, nil
}
