// Package api contains the resource clients for the Webshop backend: one
// file per resource group, all stateless request/response wrappers over a
// shared HTTP client. Authorization happens server-side; these functions
// only attach the bearer token they are given.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*result]
	log     zerolog.Logger
}

type result struct {
	status int
	body   []byte
}

// New builds a client for the backend at baseURL. The circuit breaker opens
// after consecutive transport or 5xx failures so a dead backend fails fast
// instead of hanging every user action for the full timeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "webshop-api",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[*result](settings),
		log:     log,
	}
}

// do performs one JSON round trip. token may be empty for public endpoints;
// body and out may be nil. Non-2xx responses come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (*result, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		r := &result{status: resp.StatusCode, body: data}
		if resp.StatusCode >= http.StatusInternalServerError {
			return r, decodeError(r)
		}
		return r, nil
	})

	logEvent := c.log.Debug().
		Str("method", method).
		Str("path", path).
		Dur("duration", time.Since(start))
	if res != nil {
		logEvent = logEvent.Int("status", res.status)
	}
	logEvent.Msg("api request")

	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if res.status < http.StatusOK || res.status >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s: %w", method, path, decodeError(res))
	}

	if out != nil && len(res.body) > 0 {
		if err := json.Unmarshal(res.body, out); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, token, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, token, body, out)
}

func (c *Client) delete(ctx context.Context, path string, token string) error {
	return c.do(ctx, http.MethodDelete, path, nil, token, nil, nil)
}
