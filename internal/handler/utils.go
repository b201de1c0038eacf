package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/console"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/validation"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

var ErrBadRequest = errors.New("bad request")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type Middleware = func(http.Handler) http.Handler

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, errdefs.ErrInvalidArgument),
		errors.Is(err, errdefs.ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrConflict),
		errors.Is(err, errdefs.ErrNoCourseSelected),
		errors.Is(err, errdefs.ErrFormNotOpen),
		errors.Is(err, errdefs.ErrNothingSelected):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorMessage returns the alert text for console failures and the status
// text for everything else.
func errorMessage(err error, statusCode int) string {
	var alert *console.AlertError
	if errors.As(err, &alert) && alert.Message != "" {
		return alert.Message
	}
	if statusCode < http.StatusInternalServerError && err != nil {
		return err.Error()
	}
	return http.StatusText(statusCode)
}

// fieldErrorResponse carries per-field messages for rejected forms.
type fieldErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, fieldErrorResponse{Error: "invalid form", Fields: verr.Fields})
		return
	}

	statusCode := mapErr(err)
	if logger, ok := logging.GetFromContext(r.Context()); ok {
		if statusCode >= http.StatusInternalServerError {
			logger.Error(r.Context(), "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Debug(r.Context(), "request rejected", zap.String("path", r.URL.Path), zap.Error(err))
		}
	}
	writeErrorJSON(w, statusCode, errorMessage(err, statusCode))
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	writeRawJSON(w, statusCode, data)
}

func writeRawJSON(w http.ResponseWriter, statusCode int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", ErrBadRequest, err)
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}
