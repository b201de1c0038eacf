package handler

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type LeadService interface {
	SubmitAmbassador(ctx context.Context, form domain.AmbassadorApplication) error
	SubmitPartnership(ctx context.Context, form domain.PartnershipRequest) error
}

type RateLimiter interface {
	Allow(key string) bool
}

type LeadsHandler struct {
	service LeadService
	limiter RateLimiter
}

func NewLeadsHandler(service LeadService, limiter RateLimiter) *LeadsHandler {
	return &LeadsHandler{service: service, limiter: limiter}
}

func (h *LeadsHandler) RegisterRoutes(r chi.Router) {
	r.With(h.rateLimit).Group(func(r chi.Router) {
		r.Post("/ambassador", h.SubmitAmbassador)
		r.Post("/university", h.SubmitPartnership)
	})
}

func (h *LeadsHandler) SubmitAmbassador(w http.ResponseWriter, r *http.Request) {
	var form domain.AmbassadorApplication
	if err := decodeBody(r, &form); err != nil {
		writeErr(w, r, err)
		return
	}
	h.respond(w, r, h.service.SubmitAmbassador(r.Context(), form), "Application submitted successfully.")
}

func (h *LeadsHandler) SubmitPartnership(w http.ResponseWriter, r *http.Request) {
	var form domain.PartnershipRequest
	if err := decodeBody(r, &form); err != nil {
		writeErr(w, r, err)
		return
	}
	h.respond(w, r, h.service.SubmitPartnership(r.Context(), form), "Partnership request submitted successfully.")
}

func (h *LeadsHandler) respond(w http.ResponseWriter, r *http.Request, err error, message string) {
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": message})
}

func (h *LeadsHandler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow(clientKey(r)) {
			if logger, ok := logging.GetFromContext(r.Context()); ok {
				logger.Info(r.Context(), "lead submission throttled", zap.String("path", r.URL.Path))
			}
			writeErrorJSON(w, http.StatusTooManyRequests, "too many submissions, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
