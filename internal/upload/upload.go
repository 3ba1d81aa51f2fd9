// Package upload delivers the fine-tune dataset to the OpenAI Files API.
package upload

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	retry "github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Config holds configuration for the uploader.
type Config struct {
	APIKey     string
	MaxRetries int           // Retry attempts for transient failures
	RetryDelay time.Duration // Base delay between attempts
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
}

// Client uploads dataset files using the official OpenAI SDK.
type Client struct {
	client     openai.Client
	maxRetries int
	retryDelay time.Duration
}

// New creates a new upload client.
func New(cfg Config) *Client {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 300 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// Retries happen here via retry-go, not in the SDK transport.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:     openai.NewClient(opts...),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// File uploads the dataset at path with purpose "fine-tune" and returns the
// server-assigned file ID.
func (c *Client) File(ctx context.Context, path string) (string, error) {
	var fileID string
	err := retry.Do(
		func() error {
			f, err := os.Open(path)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			defer f.Close()

			res, err := c.client.Files.New(ctx, openai.FileNewParams{
				File:    f,
				Purpose: openai.FilePurposeFineTune,
			})
			if err != nil {
				return err
			}
			fileID = res.ID
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
	)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", path, err)
	}
	return fileID, nil
}
