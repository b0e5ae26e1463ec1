package cover

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Generator creates cover art with an Imagen model through the Gemini API.
type Generator struct {
	apiKey     string
	baseURL    string
	model      string
	quality    int
	httpClient *http.Client
}

func NewGenerator(apiKey, baseURL, modelName string, quality int) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &model.ValidationError{Field: "gemini_api_key", Message: "is required for cover generation"}
	}
	return &Generator{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      strings.TrimPrefix(strings.TrimSpace(modelName), "models/"),
		quality:    quality,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func Prompt(title, author string) string {
	return fmt.Sprintf("A professional, aesthetic book cover for a book titled \"%s\" by %s. "+
		"Minimalist, artistic design. No text on the cover.", title, author)
}

type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount   int           `json:"sampleCount"`
	AspectRatio   string        `json:"aspectRatio"`
	OutputOptions outputOptions `json:"outputOptions"`
}

type outputOptions struct {
	MimeType string `json:"mimeType"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate returns a WebP data URI for a cover matching title and author.
func (g *Generator) Generate(ctx context.Context, title, author string) (string, error) {
	body, err := json.Marshal(predictRequest{
		Instances: []instance{{Prompt: Prompt(title, author)}},
		Parameters: parameters{
			SampleCount:   1,
			AspectRatio:   "3:4",
			OutputOptions: outputOptions{MimeType: "image/png"},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:predict", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "cover generation request")
	}
	defer resp.Body.Close()
	log.Debug("Cover generation",
		zap.String("model", g.model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", errors.Errorf("imagen api error: %s", errResp.Error.Message)
		}
		return "", errors.Errorf("imagen api error: %s", resp.Status)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode imagen response")
	}
	if len(out.Predictions) == 0 || out.Predictions[0].BytesBase64Encoded == "" {
		return "", errors.New("image generation returned no images")
	}
	raw, err := base64.StdEncoding.DecodeString(out.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return "", errors.Wrap(err, "decode generated image")
	}
	return EncodeDataURI(bytes.NewReader(raw), g.quality)
}
