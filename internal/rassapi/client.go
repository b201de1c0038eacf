// Package rassapi is a typed client for the RASS Academy REST API. Each
// method maps to exactly one upstream endpoint and holds no state of its own.
package rassapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/retry"
)

type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MaxRetries       int
	RetryDelay       time.Duration
	BreakerThreshold int
	BreakerReset     time.Duration
}

type Client struct {
	baseURL    string
	http       *http.Client
	breaker    *retry.CircuitBreaker
	maxRetries int
	retryDelay time.Duration
	logger     *logging.Logger
}

func New(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.BreakerThreshold < 1 {
		cfg.BreakerThreshold = 5
	}
	if cfg.BreakerReset <= 0 {
		cfg.BreakerReset = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: logging.NewTransport(logger, nil),
		},
		breaker:    retry.NewCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerReset),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
}

// APIError is a non-2xx answer from the upstream API. Message carries the
// server's own explanation when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rass api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return errdefs.ErrInvalidArgument
	case e.StatusCode == http.StatusUnauthorized:
		return errdefs.ErrUnauthenticated
	case e.StatusCode == http.StatusForbidden:
		return errdefs.ErrPermissionDenied
	case e.StatusCode == http.StatusNotFound:
		return errdefs.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return errdefs.ErrConflict
	case e.StatusCode >= http.StatusInternalServerError:
		return errdefs.ErrUnavailable
	}
	return nil
}

func (e *APIError) ServerMessage() string {
	return e.Message
}

func (e *APIError) Retriable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// ServerMessage returns the upstream message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// get performs an idempotent read, retried with backoff under the breaker.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	out, err := retry.WithCircuitBreaker(ctx, c.breaker, c.maxRetries, c.retryDelay, func() (T, error) {
		var out T
		err := c.do(ctx, http.MethodGet, path, query, nil, &out)
		return out, err
	})
	return out, breakerErr(err)
}

// send performs a mutation. Mutations pass through the breaker but are
// never retried.
func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.breaker.Execute(func() error {
		return c.do(ctx, method, path, nil, body, &out)
	})
	return out, breakerErr(err)
}

// breakerErr marks an open breaker as the upstream being unavailable.
func breakerErr(err error) error {
	if errors.Is(err, retry.ErrCircuitOpen) && !errors.Is(err, errdefs.ErrUnavailable) {
		return fmt.Errorf("%w: %w", err, errdefs.ErrUnavailable)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := ctxdata.GetAuthToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		req.Header.Set("X-Trace-Id", traceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
		c.logger.Debug(ctx, "upstream rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func withOptional(key, value string) url.Values {
	if value == "" {
		return nil
	}
	return url.Values{key: []string{value}}
}

// ignored absorbs response bodies whose content the caller does not need.
type ignored = json.RawMessage
