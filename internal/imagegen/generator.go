package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Image is a generated picture ready for upload.
type Image struct {
	Data        []byte
	ContentType string
}

// Generator produces an image for a text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Image, error)
}

// ErrPromptRequired rejects generation without a prompt.
var ErrPromptRequired = errors.New("imagegen: prompt is required")

// GenerationError reports a failed call to the external generation service.
// It is status-level: the caller surfaces it as a message and leaves the rest
// of the form state alone.
type GenerationError struct {
	Status int
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("imagegen: generation failed: %v", e.Err)
	}
	return fmt.Sprintf("imagegen: generation failed with status %d", e.Status)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Config captures the prompt-URL image API options.
type Config struct {
	BaseURL string
	Model   string
	Width   int
	Height  int
	Timeout time.Duration
}

// HTTPGenerator calls a prompt-in-the-URL image generation API.
type HTTPGenerator struct {
	cfg    Config
	client *http.Client
}

// NewHTTPGenerator constructs a generator. A nil client gets a default with
// the configured timeout.
func NewHTTPGenerator(cfg Config, client *http.Client) (*HTTPGenerator, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("imagegen: base URL is required")
	}
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 576
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPGenerator{cfg: cfg, client: client}, nil
}

// Generate requests an image for the prompt. The response body is the image
// itself; anything but a 200 is a GenerationError.
func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (*Image, error) {
	if prompt == "" {
		return nil, ErrPromptRequired
	}

	endpoint := fmt.Sprintf("%s/prompt/%s", g.cfg.BaseURL, url.PathEscape(prompt))
	query := url.Values{}
	query.Set("width", strconv.Itoa(g.cfg.Width))
	query.Set("height", strconv.Itoa(g.cfg.Height))
	if g.cfg.Model != "" {
		query.Set("model", g.cfg.Model)
	}
	query.Set("nologo", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &Image{Data: data, ContentType: contentType}, nil
}
