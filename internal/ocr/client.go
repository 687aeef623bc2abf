// Package ocr calls a remote OCR provider to recover text from image
// uploads. OCR is best-effort: both "no credentials" and "provider failed"
// are reported as typed errors the pipeline absorbs.
package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
)

var (
	// ErrUnavailable means no OCR credentials are configured; no network
	// call was attempted.
	ErrUnavailable = errors.New("ocr not configured")
	// ErrFailed means the provider was called but did not return text.
	ErrFailed = errors.New("ocr request failed")
)

// Client recognizes text in an image.
type Client interface {
	Recognize(ctx context.Context, image []byte, mime string) (string, error)
}

// HTTPClient talks to an OCR.space-compatible parse endpoint. The image is
// sent inline as a base64 data URI form field.
type HTTPClient struct {
	apiKey   string
	endpoint string
	language string
	client   *http.Client
	logger   zerolog.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithEndpoint overrides the provider URL.
func WithEndpoint(endpoint string) Option {
	return func(c *HTTPClient) { c.endpoint = endpoint }
}

// WithLanguage sets the provider language hint.
func WithLanguage(lang string) Option {
	return func(c *HTTPClient) { c.language = lang }
}

// WithTimeout bounds a single recognition request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.client.Timeout = d }
}

// NewHTTPClient builds an OCR client. An empty apiKey produces a client
// whose Recognize always returns ErrUnavailable.
func NewHTTPClient(apiKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		apiKey:   apiKey,
		endpoint: "https://api.ocr.space/parse/image",
		language: "fre",
		client:   &http.Client{Timeout: 20 * time.Second},
		logger:   logger.Logger.With().Str("component", "ocr").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type parseResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`
	ErrorMessage          any  `json:"ErrorMessage"`
}

// Recognize sends image to the provider and returns the recognized text.
func (c *HTTPClient) Recognize(ctx context.Context, image []byte, mime string) (string, error) {
	if c.apiKey == "" {
		return "", ErrUnavailable
	}
	if mime == "" {
		mime = "image/png"
	}

	form := url.Values{}
	form.Set("base64Image", fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image)))
	form.Set("language", c.language)
	form.Set("OCREngine", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("ocr request error")
		return "", fmt.Errorf("%w: %v", ErrFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("ocr provider returned non-2xx")
		return "", fmt.Errorf("%w: status %d", ErrFailed, resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrFailed, err)
	}
	if parsed.IsErroredOnProcessing {
		c.logger.Warn().Interface("provider_error", parsed.ErrorMessage).Msg("ocr provider reported a processing error")
		return "", fmt.Errorf("%w: provider error: %v", ErrFailed, parsed.ErrorMessage)
	}

	var sb strings.Builder
	for _, r := range parsed.ParsedResults {
		sb.WriteString(r.ParsedText)
	}
	return sb.String(), nil
}
