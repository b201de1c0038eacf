package rassapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/ctxdata"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/retry"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:          srv.URL + "/api/",
		Timeout:          time.Second,
		MaxRetries:       3,
		RetryDelay:       time.Millisecond,
		BreakerThreshold: 10,
		BreakerReset:     time.Second,
	}, nil)
}

func authedCtx() context.Context {
	ctx := ctxdata.WithAuthToken(context.Background(), "tok-123")
	return ctxdata.WithTraceID(ctx, "trace-1")
}

func TestClient_ForwardsTokenAndTrace(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/instructor/my-courses", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-Id"))
		w.Write([]byte(`[{"_id":"c1","title":"Go","instructor":"u1","modules":[]}]`))
	})

	courses, err := c.GetInstructorCourses(authedCtx())

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "u1", courses[0].Instructor.ID)
}

func TestClient_OmitsEmptyOptionalQuery(t *testing.T) {
	var queries []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	})

	_, err := c.GetCourseAssignments(authedCtx(), "c1", "")
	require.NoError(t, err)
	_, err = c.GetCourseSessions(authedCtx(), "c1", "b1")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "batchId=b1"}, queries)
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Title is required"}`))
	})

	_, err := c.CreateAssignment(authedCtx(), domain.AssignmentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Title is required", msg)
}

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		code     int
		expected error
	}{
		{http.StatusBadRequest, errdefs.ErrInvalidArgument},
		{http.StatusUnauthorized, errdefs.ErrUnauthenticated},
		{http.StatusForbidden, errdefs.ErrPermissionDenied},
		{http.StatusNotFound, errdefs.ErrNotFound},
		{http.StatusConflict, errdefs.ErrConflict},
		{http.StatusBadGateway, errdefs.ErrUnavailable},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.code), func(t *testing.T) {
			assert.ErrorIs(t, &APIError{StatusCode: tc.code}, tc.expected)
		})
	}

	assert.Nil(t, (&APIError{StatusCode: http.StatusTeapot}).Unwrap())
}

func TestClient_ReadsAreRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"_id":"b1","name":"Morning","course":"c1"}]`))
	})

	batches, err := c.GetCourseBatches(authedCtx(), "c1")

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Len(t, batches, 1)
	assert.Equal(t, "Morning", batches[0].Name)
}

func TestClient_MutationsAreNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.DeleteSession(authedCtx(), "s1")

	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_BreakerOpensOnRepeatedFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL, MaxRetries: 1, BreakerThreshold: 2, BreakerReset: time.Minute}, nil)

	for i := 0; i < 2; i++ {
		_, err := c.GetMentorChats(authedCtx())
		require.Error(t, err)
	}
	_, err := c.GetMentorChats(authedCtx())

	assert.ErrorIs(t, err, retry.ErrCircuitOpen)
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	err = c.SendMessageToStudent(authedCtx(), "c1", "s1", "hello")
	assert.ErrorIs(t, err, retry.ErrCircuitOpen)
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
}

func TestClient_ModuleEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/courses/c1/modules":
			var in domain.ModuleInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Intro", in.Title)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"_id":"m1","title":"Intro","order":1}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/courses/c1/modules/m1":
			w.Write([]byte(`{"_id":"m1","title":"Intro v2","order":1}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/courses/c1/modules/m1":
			w.Write([]byte(`{"message":"Module deleted","modules":[]}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := authedCtx()

	modules, err := c.CreateModule(ctx, "c1", domain.ModuleInput{Title: "Intro", Order: 1})
	require.NoError(t, err)
	require.Len(t, modules, 1)

	updated, err := c.UpdateModule(ctx, "c1", "m1", domain.ModuleInput{Title: "Intro v2"})
	require.NoError(t, err)
	assert.Equal(t, "Intro v2", updated.Title)

	remaining, err := c.DeleteModule(ctx, "c1", "m1")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestClient_GradeAssignmentSendsPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assignments/a1/grade", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"studentId":"s1","grade":90,"feedback":"Nice"}`, string(body))
		w.Write([]byte(`{"_id":"a1","maxPoints":100,"submissions":[{"_id":"sub1","student":"s1","grade":90}]}`))
	})

	a, err := c.GradeAssignment(authedCtx(), "a1", domain.GradeInput{StudentID: "s1", Grade: 90, Feedback: "Nice"})

	require.NoError(t, err)
	require.Len(t, a.Submissions, 1)
	require.NotNil(t, a.Submissions[0].Grade)
	assert.Equal(t, 90.0, *a.Submissions[0].Grade)
}

func TestClient_CurrentUserShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Wrapped", `{"user":{"_id":"u1","name":"Ira","email":"ira@example.com","role":"instructor"}}`},
		{"Bare", `{"_id":"u1","name":"Ira","email":"ira@example.com","role":"instructor"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/me", r.URL.Path)
				w.Write([]byte(tc.body))
			})

			u, err := c.CurrentUser(authedCtx())

			require.NoError(t, err)
			assert.Equal(t, "u1", u.ID)
			assert.Equal(t, domain.UserRoleInstructor, u.Role)
		})
	}
}

func TestClient_SendMessageIgnoresBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chats/c1/s1", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"_id":"chat1"}]`))
	})

	assert.NoError(t, c.SendMessageToStudent(authedCtx(), "c1", "s1", "hello"))
}

func TestClient_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(authedCtx())
	cancel()

	_, err := c.GetCourseForums(ctx, "c1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_SessionResponseShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/live-sessions/course/c1":
			var in domain.SessionInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Kickoff", in.Title)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"session":{"_id":"s1","title":"Kickoff","course":"c1","duration":60,"status":"scheduled"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/live-sessions/s1":
			w.Write([]byte(`{"_id":"s1","title":"Kickoff v2","course":"c1","duration":90}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/live-sessions/s1/status":
			w.Write([]byte(`{"_id":"s1","title":"Kickoff v2","status":"live"}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := authedCtx()
	at := time.Date(2024, 8, 10, 15, 0, 0, 0, time.UTC)

	created, err := c.CreateSession(ctx, "c1", domain.SessionInput{Title: "Kickoff", ScheduledAt: &at, Duration: 60})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)
	assert.Equal(t, "Kickoff", created.Title)
	assert.Equal(t, "c1", created.Course.ID)
	assert.Equal(t, 60, created.Duration)

	updated, err := c.UpdateSession(ctx, "s1", domain.SessionInput{Title: "Kickoff v2", ScheduledAt: &at, Duration: 90})
	require.NoError(t, err)
	assert.Equal(t, "s1", updated.ID)
	assert.Equal(t, 90, updated.Duration)

	live, err := c.UpdateSessionStatus(ctx, "s1", domain.SessionLive)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionLive, live.Status)
}

func TestClient_EventShapes(t *testing.T) {
	for name, body := range map[string]string{
		"bare":    `[{"_id":"e1","title":"Meetup","type":"Free"}]`,
		"wrapped": `{"success":true,"events":[{"_id":"e1","title":"Meetup","type":"Free"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/events", r.URL.Path)
				w.Write([]byte(body))
			})

			events, err := c.GetEvents(authedCtx())

			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, "e1", events[0].ID)
			assert.Equal(t, domain.EventFree, events[0].Type)
		})
	}
}

func TestClient_NotificationEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/notification-management/users":
			assert.Equal(t, "student", r.URL.Query().Get("role"))
			assert.False(t, r.URL.Query().Has("search"))
			w.Write([]byte(`{"users":[{"_id":"u1","name":"Asha","role":"student"}],"count":1}`))
		case "/api/notification-management/send-to-users":
			assert.Equal(t, http.MethodPost, r.Method)
			var in domain.UserNotification
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, []string{"u1", "u2"}, in.UserIDs)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"Notifications sent","count":2,"emailResults":{"successful":[{"email":"a@rass.dev"}],"failed":[]}}`))
		case "/api/notification-management/history":
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "failed", r.URL.Query().Get("emailStatus"))
			assert.False(t, r.URL.Query().Has("type"))
			w.Write([]byte(`{"notifications":[],"totalPages":3,"currentPage":2,"total":41}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := authedCtx()

	users, err := c.GetUsers(ctx, domain.UserRoleStudent, "")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)

	res, err := c.SendNotificationToUsers(ctx, domain.UserNotification{UserIDs: []string{"u1", "u2"}, Title: "t", Message: "m", Type: domain.NotificationBulk})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	require.NotNil(t, res.EmailResults)
	assert.Len(t, res.EmailResults.Successful, 1)

	history, err := c.GetNotificationHistory(ctx, domain.HistoryQuery{Page: 2, EmailStatus: domain.EmailFailed})
	require.NoError(t, err)
	assert.Equal(t, 41, history.Total)
	assert.Equal(t, 3, history.TotalPages)
}
