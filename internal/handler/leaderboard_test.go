package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
)

type fakeLeaderboardBackend struct {
	boards      map[string]domain.Leaderboard
	enrollments []domain.Enrollment
	boardCalls  int
}

func (f *fakeLeaderboardBackend) GetBatchLeaderboard(_ context.Context, batchID string) (domain.Leaderboard, error) {
	f.boardCalls++
	b, ok := f.boards[batchID]
	if !ok {
		return domain.Leaderboard{}, errdefs.ErrNotFound
	}
	return b, nil
}

func (f *fakeLeaderboardBackend) GetMyEnrollments(context.Context) ([]domain.Enrollment, error) {
	return f.enrollments, nil
}

func sampleBoard() domain.Leaderboard {
	return domain.Leaderboard{
		Batch: domain.Ref{ID: "b1", Name: "Batch 1"},
		Entries: []domain.LeaderboardEntry{
			{Student: domain.Ref{ID: "s1", Email: "top@rass.dev"}, Rank: 1, ProgressPercentage: 90},
			{Student: domain.Ref{ID: "s2", Email: "me@rass.dev"}, Rank: 2, ProgressPercentage: 60},
		},
	}
}

func leaderboardRouter(backend LeaderboardBackend, cache Cache, email string) http.Handler {
	r := chi.NewRouter()
	r.Route("/leaderboard", func(r chi.Router) {
		NewLeaderboardHandler(backend, cache, time.Minute).RegisterRoutes(r, func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(ctxdata.WithUserEmail(r.Context(), email)))
			})
		})
	})
	return r
}

func TestLeaderboardHandler_BatchIsCached(t *testing.T) {
	backend := &fakeLeaderboardBackend{boards: map[string]domain.Leaderboard{"b1": sampleBoard()}}
	cache := newMemCache()
	h := leaderboardRouter(backend, cache, "")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard/batches/b1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Leaderboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Entries, 2)
		assert.Equal(t, 1, got.Entries[0].Rank)
	}
	assert.Equal(t, 1, backend.boardCalls)
	assert.Equal(t, 1, cache.sets)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard/batches/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboardHandler_MyRank(t *testing.T) {
	backend := &fakeLeaderboardBackend{
		boards: map[string]domain.Leaderboard{"b1": sampleBoard()},
		enrollments: []domain.Enrollment{
			{ID: "e0", Course: domain.Ref{ID: "c0"}},
			{ID: "e1", Course: domain.Ref{ID: "c1", Name: "Go"}, Batch: &domain.Ref{ID: "b1"}},
		},
	}

	w := httptest.NewRecorder()
	leaderboardRouter(backend, nil, "me@rass.dev").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard/me", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got myRankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Rank)
	assert.Equal(t, 2, *got.Rank)
	assert.Equal(t, "c1", got.Course.ID)
	assert.Equal(t, "b1", got.Batch.ID)

	w = httptest.NewRecorder()
	leaderboardRouter(backend, nil, "ghost@rass.dev").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard/me", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Nil(t, got.Rank)
}

func TestLeaderboardHandler_NoBatchEnrollment(t *testing.T) {
	backend := &fakeLeaderboardBackend{enrollments: []domain.Enrollment{{ID: "e0"}}}

	w := httptest.NewRecorder()
	leaderboardRouter(backend, nil, "me@rass.dev").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaderboard/me", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, backend.boardCalls)
}
