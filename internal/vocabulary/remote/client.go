package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

const (
	// DefaultTimeout aborts an in-flight fetch; the caller then falls back.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxRetryAttempts is the number of retries after the first try.
	DefaultMaxRetryAttempts uint = 2

	vocabularyPath = "/api/words"
)

// Client fetches the vocabulary set over HTTP.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient creates a vocabulary client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	return false
}

// Fetch implements the vocabulary.Source interface. A non-success or
// malformed payload is an error; the store decides the fallback.
func (client *Client) Fetch(ctx context.Context) (map[string][]vocabulary.Word, error) {
	var result map[string][]vocabulary.Word
	if err := retry.Do(
		func() error {
			leveled, err := client.fetch(ctx)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = leveled
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) fetch(ctx context.Context) (map[string][]vocabulary.Word, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&fetchResponse{}).
		Get(vocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*fetchResponse)
	if responseBody == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	if !responseBody.Success {
		return nil, fmt.Errorf("vocabulary service reported failure: %s", responseBody.Message)
	}
	if len(responseBody.Data) == 0 {
		return nil, fmt.Errorf("vocabulary service returned no data")
	}

	return responseBody.toWords(), nil
}
