package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type fakeResolver struct {
	user  domain.User
	err   error
	calls int
	token string
}

func (f *fakeResolver) CurrentUser(ctx context.Context) (domain.User, error) {
	f.calls++
	f.token, _ = ctxdata.GetAuthToken(ctx)
	return f.user, f.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

type seen struct {
	userID, role, email, token, trace string
}

func capture(dst *seen) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dst.userID, _ = ctxdata.GetUserID(ctx)
		dst.role, _ = ctxdata.GetUserRole(ctx)
		dst.email, _ = ctxdata.GetUserEmail(ctx)
		dst.token, _ = ctxdata.GetAuthToken(ctx)
		dst.trace, _ = ctxdata.GetTraceID(ctx)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware_ResolvesAndCaches(t *testing.T) {
	resolver := &fakeResolver{user: domain.User{ID: "u1", Email: "i@rass.dev", Role: domain.UserRoleInstructor}}
	cache := newMemCache()
	var got seen
	h := NewAuthMiddleware(resolver, cache, time.Minute)(capture(&got))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/console", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	}

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "tok-123", resolver.token)
	assert.Equal(t, seen{userID: "u1", role: "instructor", email: "i@rass.dev", token: "tok-123"}, got)

	require.Len(t, cache.data, 1)
	for key := range cache.data {
		assert.NotContains(t, key, "tok-123")
		assert.Equal(t, "auth:"+tokenHash("tok-123"), key)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		err      error
		user     domain.User
		expected int
	}{
		{name: "missing header", header: "", expected: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", expected: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", expected: http.StatusUnauthorized},
		{name: "upstream 401", header: "Bearer t", err: errdefs.ErrUnauthenticated, expected: http.StatusUnauthorized},
		{name: "no user id", header: "Bearer t", user: domain.User{}, expected: http.StatusUnauthorized},
		{name: "upstream down", header: "Bearer t", err: errors.New("dial tcp"), expected: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &fakeResolver{user: tc.user, err: tc.err}
			h := NewAuthMiddleware(resolver, nil, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/console", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole(domain.UserRoleInstructor, domain.UserRoleAdmin)
	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for role, expected := range map[string]int{
		"instructor": http.StatusOK,
		"admin":      http.StatusOK,
		"student":    http.StatusForbidden,
		"":           http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/console", nil)
		if role != "" {
			req = req.WithContext(ctxdata.WithUserRole(req.Context(), role))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, expected, w.Code, role)
	}
}

func TestLoggingMiddleware_SetsTraceID(t *testing.T) {
	var got seen
	h := NewLoggingMiddleware(logging.Nop())(capture(&got))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotEmpty(t, got.trace)
	assert.Equal(t, got.trace, w.Header().Get("X-Trace-Id"))
}
