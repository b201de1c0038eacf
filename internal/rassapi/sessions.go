package rassapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

type sessionFields = domain.LiveSession

// sessionResponse accepts both a bare session and one wrapped in "session".
type sessionResponse struct {
	Session *domain.LiveSession `json:"session"`
	sessionFields
}

func (r sessionResponse) unwrap() domain.LiveSession {
	if r.Session != nil {
		return *r.Session
	}
	return r.sessionFields
}

func (c *Client) GetCourseSessions(ctx context.Context, courseID, batchID string) ([]domain.LiveSession, error) {
	return get[[]domain.LiveSession](ctx, c, "/live-sessions/course/"+url.PathEscape(courseID), withOptional("batchId", batchID))
}

// CreateSession answers {"success": true, "session": {...}} upstream.
func (c *Client) CreateSession(ctx context.Context, courseID string, in domain.SessionInput) (domain.LiveSession, error) {
	resp, err := send[sessionResponse](ctx, c, http.MethodPost, "/live-sessions/course/"+url.PathEscape(courseID), in)
	if err != nil {
		return domain.LiveSession{}, err
	}
	return resp.unwrap(), nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, in domain.SessionInput) (domain.LiveSession, error) {
	resp, err := send[sessionResponse](ctx, c, http.MethodPut, "/live-sessions/"+url.PathEscape(id), in)
	if err != nil {
		return domain.LiveSession{}, err
	}
	return resp.unwrap(), nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	_, err := send[ignored](ctx, c, http.MethodDelete, "/live-sessions/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) UpdateSessionStatus(ctx context.Context, id string, status domain.SessionStatus) (domain.LiveSession, error) {
	body := map[string]domain.SessionStatus{"status": status}
	resp, err := send[sessionResponse](ctx, c, http.MethodPut, "/live-sessions/"+url.PathEscape(id)+"/status", body)
	if err != nil {
		return domain.LiveSession{}, err
	}
	return resp.unwrap(), nil
}
