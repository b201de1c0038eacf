package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/notifications"
)

type fakeNotificationBackend struct {
	role     domain.UserRole
	courseID string
	toCourse *domain.CourseNotification
	toUsers  *domain.UserNotification
	history  domain.HistoryQuery
	users    []domain.User
}

func (f *fakeNotificationBackend) GetUsers(_ context.Context, role domain.UserRole, _ string) ([]domain.User, error) {
	f.role = role
	return f.users, nil
}

func (f *fakeNotificationBackend) GetCourseUsers(_ context.Context, courseID string) ([]domain.User, error) {
	f.courseID = courseID
	return f.users, nil
}

func (f *fakeNotificationBackend) SendNotificationByCourse(_ context.Context, in domain.CourseNotification) (domain.SendResult, error) {
	f.toCourse = &in
	return domain.SendResult{Message: "sent", Count: 3, Course: "Go"}, nil
}

func (f *fakeNotificationBackend) SendNotificationToUsers(_ context.Context, in domain.UserNotification) (domain.SendResult, error) {
	f.toUsers = &in
	return domain.SendResult{Message: "sent", Count: len(in.UserIDs)}, nil
}

func (f *fakeNotificationBackend) GetNotificationHistory(_ context.Context, q domain.HistoryQuery) (domain.NotificationHistory, error) {
	f.history = q
	return domain.NotificationHistory{}, nil
}

func (f *fakeNotificationBackend) GetNotificationStats(context.Context) (domain.NotificationStats, error) {
	return domain.NotificationStats{TotalNotifications: 4, EmailsSent: 2}, nil
}

func notificationsRouter(backend notifications.Backend) http.Handler {
	r := chi.NewRouter()
	r.Route("/admin/notifications", func(r chi.Router) {
		NewNotificationsHandler(notifications.NewService(backend, nil)).RegisterRoutes(r)
	})
	return r
}

func TestNotificationsHandler_SendToCourse(t *testing.T) {
	backend := &fakeNotificationBackend{}
	h := notificationsRouter(backend)

	body := `{"courseId":"c1","title":" Exam moved ","message":"Friday 10am","sendEmail":true}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/notifications/send-by-course", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var got domain.SendResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Count)

	require.NotNil(t, backend.toCourse)
	assert.Equal(t, "Exam moved", backend.toCourse.Title)
	assert.Equal(t, domain.NotificationCourseUpdate, backend.toCourse.Type)
	assert.True(t, backend.toCourse.SendEmail)
}

func TestNotificationsHandler_SendToUsersRejectsEmptyForm(t *testing.T) {
	backend := &fakeNotificationBackend{}
	h := notificationsRouter(backend)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/notifications/send-to-users", strings.NewReader(`{"userIds":[" "]}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var got fieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "invalid form", got.Error)
	assert.Contains(t, got.Fields, "title")
	assert.Contains(t, got.Fields, "message")
	assert.Nil(t, backend.toUsers)
}

func TestNotificationsHandler_Users(t *testing.T) {
	backend := &fakeNotificationBackend{users: []domain.User{{ID: "u1", Name: "Asha", Role: domain.UserRoleStudent}}}
	h := notificationsRouter(backend)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/notifications/users?role=Student", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.UserRoleStudent, backend.role)

	var got usersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Count)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/notifications/users?role=guest", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/notifications/courses/c9/users", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c9", backend.courseID)
}

func TestNotificationsHandler_History(t *testing.T) {
	backend := &fakeNotificationBackend{}
	h := notificationsRouter(backend)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/notifications/history?page=2&limit=500&emailStatus=failed", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, backend.history.Page)
	assert.Equal(t, notifications.MaxPageSize, backend.history.Limit)
	assert.Equal(t, domain.EmailFailed, backend.history.EmailStatus)

	var got domain.NotificationHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotNil(t, got.Notifications)

	for _, target := range []string{"/admin/notifications/history?page=0", "/admin/notifications/history?limit=ten"} {
		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestNotificationsHandler_Stats(t *testing.T) {
	h := notificationsRouter(&fakeNotificationBackend{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/notifications/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.NotificationStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 4, got.TotalNotifications)
}
