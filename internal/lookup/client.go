// Package lookup wraps the public Brazilian data APIs (ViaCEP, BrasilAPI,
// ReceitaWS, Parallelum FIPE) behind thin typed clients. Every client cleans
// and validates its input through the validators package before touching the
// network, and maps upstream failures into ErrNotFound or ErrUpstream.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound means the value is well-formed but absent from the
	// upstream database.
	ErrNotFound = errors.New("lookup: not found")

	// ErrUpstream means the upstream API failed or returned garbage.
	ErrUpstream = errors.New("lookup: upstream error")
)

// Client is the HTTP client shared by all lookup services. It retries
// transient failures with a fixed delay between attempts.
type Client struct {
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *logrus.Logger
}

// NewClient creates a lookup client with the given timeout and retry policy.
func NewClient(timeout time.Duration, maxRetries int, retryDelay time.Duration, logger *logrus.Logger) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// GetJSON fetches url and decodes the JSON response into out. A 404 maps to
// ErrNotFound; other non-2xx statuses and transport errors map to
// ErrUpstream after the retry budget is exhausted. Retries honor ctx.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		err := c.getJSONOnce(ctx, url, out)
		if err == nil {
			return nil
		}
		// Not-found is authoritative, retrying cannot change it.
		if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
			return err
		}
		lastErr = err

		c.logger.WithFields(logrus.Fields{
			"url":     url,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Lookup request failed")
	}
	return lastErr
}

func (c *Client) getJSONOnce(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
