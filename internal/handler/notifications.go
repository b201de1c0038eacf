package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

type NotificationService interface {
	ListUsers(ctx context.Context, role, search string) ([]domain.User, error)
	CourseUsers(ctx context.Context, courseID string) ([]domain.User, error)
	SendToCourse(ctx context.Context, in domain.CourseNotification) (domain.SendResult, error)
	SendToUsers(ctx context.Context, in domain.UserNotification) (domain.SendResult, error)
	History(ctx context.Context, q domain.HistoryQuery) (domain.NotificationHistory, error)
	Stats(ctx context.Context) (domain.NotificationStats, error)
}

// NotificationsHandler is the admin notification dashboard.
type NotificationsHandler struct {
	service NotificationService
}

func NewNotificationsHandler(service NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: service}
}

func (h *NotificationsHandler) RegisterRoutes(r chi.Router, middlewares ...Middleware) {
	r.With(middlewares...).Group(func(r chi.Router) {
		r.Get("/users", h.ListUsers)
		r.Get("/courses/{courseID}/users", h.CourseUsers)
		r.Post("/send-by-course", h.SendToCourse)
		r.Post("/send-to-users", h.SendToUsers)
		r.Get("/history", h.History)
		r.Get("/stats", h.Stats)
	})
}

type usersResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

func newUsersResponse(users []domain.User) usersResponse {
	if users == nil {
		users = []domain.User{}
	}
	return usersResponse{Users: users, Count: len(users)}
}

func (h *NotificationsHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.service.ListUsers(r.Context(), q.Get("role"), q.Get("search"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newUsersResponse(users))
}

func (h *NotificationsHandler) CourseUsers(w http.ResponseWriter, r *http.Request) {
	courseID, err := parsePathParam(r, "courseID")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	users, err := h.service.CourseUsers(r.Context(), courseID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newUsersResponse(users))
}

func (h *NotificationsHandler) SendToCourse(w http.ResponseWriter, r *http.Request) {
	var in domain.CourseNotification
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	res, err := h.service.SendToCourse(r.Context(), in)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *NotificationsHandler) SendToUsers(w http.ResponseWriter, r *http.Request) {
	var in domain.UserNotification
	if err := decodeBody(r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	res, err := h.service.SendToUsers(r.Context(), in)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *NotificationsHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := positiveParam(q.Get("page"), "page")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	limit, err := positiveParam(q.Get("limit"), "limit")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	query := domain.HistoryQuery{
		Page:        page,
		Limit:       limit,
		Type:        domain.NotificationType(q.Get("type")),
		EmailStatus: domain.EmailStatus(q.Get("emailStatus")),
	}

	history, err := h.service.History(r.Context(), query)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if history.Notifications == nil {
		history.Notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, history)
}

// positiveParam returns 0 for an absent value so the service default applies.
func positiveParam(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrBadRequest, name)
	}
	return n, nil
}

func (h *NotificationsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
