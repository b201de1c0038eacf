package logging

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type loggingTransport struct {
	logger *Logger
	next   http.RoundTripper
}

// NewTransport wraps next so every outbound request is logged once it
// completes. A nil next falls back to http.DefaultTransport.
func NewTransport(logger *Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{logger: logger, next: next}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	t.logger.Debug(ctx, "upstream request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := t.next.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		t.logger.Error(ctx, "upstream request failed", fields...)
		return nil, err
	}

	fields = append(fields, zap.Int("status", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		t.logger.Warn(ctx, "upstream request handled", fields...)
	} else {
		t.logger.Info(ctx, "upstream request handled", fields...)
	}
	return resp, nil
}
