// Package yaci is a minimal client for the Yaci DevKit REST API.
package yaci

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// API paths, relative to the configured base URL.
const (
	PathLatestEpoch = "/epochs/latest"
	PathLatestBlock = "/blocks/latest"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a client for baseURL. The HTTP client has no timeout of
// its own; callers bound requests through the context.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// LatestEpoch fetches GET {base}/epochs/latest.
func (c *Client) LatestEpoch(ctx context.Context) (*EpochInfo, RequestSample, error) {
	var epoch epochWire
	sample, err := c.get(ctx, PathLatestEpoch, &epoch)
	if err != nil {
		return nil, sample, err
	}
	return epoch.info(), sample, nil
}

// LatestBlock fetches GET {base}/blocks/latest.
func (c *Client) LatestBlock(ctx context.Context) (*BlockInfo, RequestSample, error) {
	var block blockWire
	sample, err := c.get(ctx, PathLatestBlock, &block)
	if err != nil {
		return nil, sample, err
	}
	return block.info(), sample, nil
}

// get issues a single GET and decodes the JSON body into out. A body that
// is null or lacks a required field is rejected like malformed JSON.
// No retries.
func (c *Client) get(ctx context.Context, path string, out wire) (RequestSample, error) {
	url := c.baseURL + path
	sample := RequestSample{Endpoint: path}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return sample, err
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting", "url", url)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", url, "error", err)
		return sample, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	sample.Latency = time.Since(start)
	sample.Status = resp.StatusCode
	if err != nil {
		return sample, fmt.Errorf("GET %s: read body: %w", url, err)
	}

	c.logger.Debug("response", "url", url, "status", resp.StatusCode, "latency", sample.Latency)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return sample, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return sample, fmt.Errorf("GET %s: invalid JSON response: %w", url, err)
	}
	if err := out.validate(); err != nil {
		return sample, fmt.Errorf("GET %s: invalid JSON response: %w", url, err)
	}

	return sample, nil
}
