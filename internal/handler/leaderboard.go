package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type LeaderboardBackend interface {
	GetBatchLeaderboard(ctx context.Context, batchID string) (domain.Leaderboard, error)
	GetMyEnrollments(ctx context.Context) ([]domain.Enrollment, error)
}

type LeaderboardHandler struct {
	backend LeaderboardBackend
	cache   Cache
	ttl     time.Duration
}

func NewLeaderboardHandler(backend LeaderboardBackend, cache Cache, ttl time.Duration) *LeaderboardHandler {
	return &LeaderboardHandler{backend: backend, cache: cache, ttl: ttl}
}

func (h *LeaderboardHandler) RegisterRoutes(r chi.Router, middlewares ...Middleware) {
	r.With(middlewares...).Group(func(r chi.Router) {
		r.Get("/batches/{batchID}", h.GetBatchLeaderboard)
		r.Get("/me", h.GetMyRank)
	})
}

func (h *LeaderboardHandler) GetBatchLeaderboard(w http.ResponseWriter, r *http.Request) {
	batchID, err := parsePathParam(r, "batchID")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	data, err := h.leaderboardJSON(r.Context(), batchID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeRawJSON(w, http.StatusOK, data)
}

type myRankResponse struct {
	Course      domain.Ref         `json:"course"`
	Batch       domain.Ref         `json:"batch"`
	Rank        *int               `json:"rank"`
	Leaderboard domain.Leaderboard `json:"leaderboard"`
}

// GetMyRank reports the caller's position in the batch of their first
// enrollment that has one. Rank is null when the caller is not listed.
func (h *LeaderboardHandler) GetMyRank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	enrollments, err := h.backend.GetMyEnrollments(ctx)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	var enrollment *domain.Enrollment
	for i := range enrollments {
		if b := enrollments[i].Batch; b != nil && b.ID != "" {
			enrollment = &enrollments[i]
			break
		}
	}
	if enrollment == nil {
		writeErr(w, r, fmt.Errorf("no batch enrollment: %w", errdefs.ErrNotFound))
		return
	}

	data, err := h.leaderboardJSON(ctx, enrollment.Batch.ID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var board domain.Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		writeErr(w, r, fmt.Errorf("decode leaderboard: %w", err))
		return
	}

	resp := myRankResponse{Course: enrollment.Course, Batch: *enrollment.Batch, Leaderboard: board}
	email, _ := ctxdata.GetUserEmail(ctx)
	if rank, ok := board.RankOf(email); ok {
		resp.Rank = &rank
	}
	writeJSON(w, http.StatusOK, resp)
}

// leaderboardJSON serves a batch ranking from cache when it can. The ranking
// is the same for every member of the batch, so the key is the batch alone.
func (h *LeaderboardHandler) leaderboardJSON(ctx context.Context, batchID string) ([]byte, error) {
	key := "leaderboard:" + batchID
	if h.cache != nil {
		if data, ok := h.cache.Get(ctx, key); ok {
			return data, nil
		}
	}

	board, err := h.backend.GetBatchLeaderboard(ctx, batchID)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(board)
	if err != nil {
		return nil, fmt.Errorf("encode leaderboard: %w", err)
	}

	if h.cache != nil && h.ttl > 0 {
		h.cache.Set(ctx, key, data, h.ttl)
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "leaderboard cached", zap.String("batch_id", batchID), zap.Duration("ttl", h.ttl))
		}
	}
	return data, nil
}
