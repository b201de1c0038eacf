package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type userIDKey struct{}
type userRoleKey struct{}
type userEmailKey struct{}
type authTokenKey struct{}

var (
	traceIDKeyInstance   = traceIDKey{}
	userIDKeyInstance    = userIDKey{}
	userRoleKeyInstance  = userRoleKey{}
	userEmailKeyInstance = userEmailKey{}
	authTokenKeyInstance = authTokenKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKeyInstance, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKeyInstance)
	userID, ok := v.(string)
	return userID, ok
}

func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKeyInstance, role)
}

func GetUserRole(ctx context.Context) (string, bool) {
	v := ctx.Value(userRoleKeyInstance)
	role, ok := v.(string)
	return role, ok
}

func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKeyInstance, email)
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKeyInstance)
	email, ok := v.(string)
	return email, ok
}

// WithAuthToken stores the caller's bearer token so upstream calls made on
// their behalf can forward it.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKeyInstance, token)
}

func GetAuthToken(ctx context.Context) (string, bool) {
	v := ctx.Value(authTokenKeyInstance)
	token, ok := v.(string)
	return token, ok && token != ""
}
