package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type UserResolver interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

// NewAuthMiddleware resolves the bearer token to a user through the RASS API
// and stores the identity in the request context. Lookups are cached by a
// hash of the token, never the token itself.
func NewAuthMiddleware(resolver UserResolver, cache Cache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}
			ctx = ctxdata.WithAuthToken(ctx, token)

			user, err := resolveUser(ctx, resolver, cache, ttl, token)
			if err != nil {
				if errors.Is(err, errdefs.ErrUnauthenticated) || errors.Is(err, errdefs.ErrPermissionDenied) {
					if logger, ok := logging.GetFromContext(ctx); ok {
						logger.Info(ctx, "token rejected", zap.String("path", r.URL.Path))
					}
					writeError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "error while resolving current user",
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Error(err),
					)
				}
				writeError(w, http.StatusBadGateway, "cannot verify credentials")
				return
			}

			ctx = ctxdata.WithUserID(ctx, user.ID)
			ctx = ctxdata.WithUserRole(ctx, string(user.Role))
			ctx = ctxdata.WithUserEmail(ctx, user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after the auth middleware.
func RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := ctxdata.GetUserRole(r.Context())
			if !slices.Contains(roles, domain.UserRole(role)) {
				if logger, ok := logging.GetFromContext(r.Context()); ok {
					logger.Info(r.Context(), "role not allowed",
						zap.String("path", r.URL.Path),
						zap.String("role", role),
					)
				}
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveUser(ctx context.Context, resolver UserResolver, cache Cache, ttl time.Duration, token string) (domain.User, error) {
	key := "auth:" + tokenHash(token)
	if cache != nil {
		if data, ok := cache.Get(ctx, key); ok {
			var user domain.User
			if err := json.Unmarshal(data, &user); err == nil && user.ID != "" {
				return user, nil
			}
		}
	}

	user, err := resolver.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if user.ID == "" {
		return domain.User{}, errdefs.ErrUnauthenticated
	}

	if cache != nil && ttl > 0 {
		if data, err := json.Marshal(user); err == nil {
			cache.Set(ctx, key, data, ttl)
		}
	}
	return user, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func tokenHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
