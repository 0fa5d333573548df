// Package summarizer talks to the summarization backend. Summarize is the only
// way the rest of the program issues POST /summarize.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"ai-dvsum/internal/models"
	"ai-dvsum/internal/modules/youtube"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single request so Loading cannot hang forever.
	DefaultTimeout = 30 * time.Second

	defaultWorkers  = 2
	maxResponseSize = 10 << 20
	requestIDHeader = "X-Request-ID"
)

// Client issues summarization requests against one backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	workers    int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithWorkers sets how many requests Execute keeps in flight.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates a Client for the backend at baseURL. A zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Summarize sends videoURL to the backend and waits for exactly one answer.
// The returned Summary carries either the text or an error; it never panics
// and never returns without a result.
func (c *Client) Summarize(ctx context.Context, videoURL string) models.Summary {
	start := time.Now()
	result := models.Summary{
		URL:       videoURL,
		VideoID:   youtube.ExtractVideoID(videoURL),
		RequestID: uuid.NewString(),
	}

	text, err := c.summarize(ctx, videoURL, result.RequestID)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		c.logger.Warn("summarize failed",
			zap.String("request_id", result.RequestID),
			zap.String("video_url", videoURL),
			zap.Duration("duration", result.Duration),
			zap.Error(err))
		return result
	}

	result.Text = text
	c.logger.Info("summarize succeeded",
		zap.String("request_id", result.RequestID),
		zap.String("video_id", result.VideoID),
		zap.Int("summary_bytes", len(text)),
		zap.Duration("duration", result.Duration))
	return result
}

func (c *Client) summarize(ctx context.Context, videoURL, requestID string) (string, error) {
	payload, err := json.Marshal(models.SummaryRequest{VideoURL: videoURL})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize", bytes.NewReader(payload))
	if err != nil {
		return "", transportError("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debug("sending summarize request",
		zap.String("request_id", requestID),
		zap.String("endpoint", req.URL.String()))

	body, status, err := c.do(req)
	if err != nil {
		return "", err
	}

	if status < 200 || status > 299 {
		return "", &APIError{StatusCode: status, Message: extractMessage(body)}
	}

	var resp models.SummaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", transportError("decode response: %v", err)
	}
	return resp.Summary, nil
}

// Greeting calls GET / and returns the backend's status message. It is a
// connectivity check and plays no part in summarization.
func (c *Client) Greeting(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", transportError("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	body, status, err := c.do(req)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &APIError{StatusCode: status, Message: extractMessage(body)}
	}

	var resp models.GreetingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", transportError("decode response: %v", err)
	}
	return resp.Message, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, transportError("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, transportError("read response: %v", err)
	}
	return body, resp.StatusCode, nil
}

// Execute summarizes every URL received on input and sends a models.Summary
// for each to output. URLs that fail validation are reported without a
// request being made.
func (c *Client) Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.workers)

	defer wg.Wait()

	for item := range input {
		videoURL, ok := item.(string)
		if !ok {
			logger.Warn("invalid input type, expected string", zap.Any("type", item))
			continue
		}

		if err := youtube.Validate(videoURL); err != nil {
			output <- models.Summary{URL: videoURL, Err: err}
			continue
		}

		select {
		case <-ctx.Done():
			logger.Warn("summarizing interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(videoURL string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			output <- c.Summarize(ctx, videoURL)
		}(videoURL)
	}
	return nil
}
