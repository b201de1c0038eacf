package rassapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

const notificationsPath = "/notification-management"

type usersResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

// GetUsers lists users, optionally narrowed by role and by a name or email
// search.
func (c *Client) GetUsers(ctx context.Context, role domain.UserRole, search string) ([]domain.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", string(role))
	}
	if search != "" {
		query.Set("search", search)
	}
	resp, err := get[usersResponse](ctx, c, notificationsPath+"/users", query)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// GetCourseUsers lists the students enrolled in courseID.
func (c *Client) GetCourseUsers(ctx context.Context, courseID string) ([]domain.User, error) {
	resp, err := get[usersResponse](ctx, c, notificationsPath+"/courses/"+url.PathEscape(courseID)+"/users", nil)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) SendNotificationByCourse(ctx context.Context, in domain.CourseNotification) (domain.SendResult, error) {
	return send[domain.SendResult](ctx, c, http.MethodPost, notificationsPath+"/send-by-course", in)
}

func (c *Client) SendNotificationToUsers(ctx context.Context, in domain.UserNotification) (domain.SendResult, error) {
	return send[domain.SendResult](ctx, c, http.MethodPost, notificationsPath+"/send-to-users", in)
}

func (c *Client) GetNotificationHistory(ctx context.Context, q domain.HistoryQuery) (domain.NotificationHistory, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Type != "" {
		query.Set("type", string(q.Type))
	}
	if q.EmailStatus != "" {
		query.Set("emailStatus", string(q.EmailStatus))
	}
	return get[domain.NotificationHistory](ctx, c, notificationsPath+"/history", query)
}

func (c *Client) GetNotificationStats(ctx context.Context) (domain.NotificationStats, error) {
	return get[domain.NotificationStats](ctx, c, notificationsPath+"/stats", nil)
}
