package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/catalog"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

const eventsCacheKey = "events:all"

type EventsBackend interface {
	GetEvents(ctx context.Context) ([]domain.Event, error)
}

type EventsHandler struct {
	backend EventsBackend
	cache   Cache
	ttl     time.Duration
}

func NewEventsHandler(backend EventsBackend, cache Cache, ttl time.Duration) *EventsHandler {
	return &EventsHandler{backend: backend, cache: cache, ttl: ttl}
}

func (h *EventsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListEvents)
}

type eventsResponse struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
}

// ListEvents filters the public event list by search text and Free/Paid
// type. The unfiltered list is cached as one entry.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	eventType, err := catalog.ParseEventType(q.Get("type"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	sortKey, err := catalog.ParseEventSort(q.Get("sort"))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	all, err := h.events(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	filtered := catalog.ApplyEvents(all, catalog.EventFilter{Search: q.Get("search"), Type: eventType, Sort: sortKey})
	writeJSON(w, http.StatusOK, eventsResponse{Events: filtered, Total: len(all)})
}

func (h *EventsHandler) events(ctx context.Context) ([]domain.Event, error) {
	if h.cache != nil {
		if data, ok := h.cache.Get(ctx, eventsCacheKey); ok {
			var cached []domain.Event
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			h.cache.Delete(ctx, eventsCacheKey)
		}
	}

	events, err := h.backend.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.Event{}
	}
	if h.cache != nil && h.ttl > 0 {
		data, err := json.Marshal(events)
		if err != nil {
			return nil, fmt.Errorf("encode events: %w", err)
		}
		h.cache.Set(ctx, eventsCacheKey, data, h.ttl)
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "events cached", zap.Int("count", len(events)), zap.Duration("ttl", h.ttl))
		}
	}
	return events, nil
}
