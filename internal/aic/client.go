package aic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/common"
)

// ErrorKind classifies an API failure.
type ErrorKind int

const (
	// KindStatus is a valid HTTP response with a non-2xx status code.
	KindStatus ErrorKind = iota
	// KindTransport is a connection, timeout, or protocol failure.
	KindTransport
	// KindUnexpected is a decoding failure or other anomaly.
	KindUnexpected
)

// APIError is the single error value returned by the client. Exactly one
// failure kind applies; StatusCode and Body are set only for KindStatus.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Body)
	case KindTransport:
		return fmt.Sprintf("Failed to connect to API: %v", e.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", e.Err)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Client issues single-shot GET requests to the AIC API. No retries, no
// backoff, no caching — every call is independent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client targeting the given API base URL. The timeout
// covers the whole request, connect and read included.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Execute performs one GET against the given endpoint path and returns the
// decoded envelope. Failures come back as *APIError.
func (c *Client) Execute(ctx context.Context, path string, params Params) (*Envelope, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	c.logger.Debug().
		Str("method", "GET").
		Str("url", target).
		Msg("AIC API Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &APIError{Kind: KindUnexpected, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("url", target).Dur("duration", duration).Msg("AIC API Request Failed")
		return nil, &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindUnexpected, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("AIC API Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("AIC API Error Response")
		return nil, &APIError{Kind: KindStatus, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Kind: KindUnexpected, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return &env, nil
}
