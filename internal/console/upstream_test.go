package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/console/mocks"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/rassapi"
)

// upstreamConsole wires a console to a real API client talking to routes.
// Any path not in routes answers an empty list.
func upstreamConsole(t *testing.T, routes map[string]string) *Console {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			body = `[]`
		}
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := rassapi.New(rassapi.Config{BaseURL: srv.URL, Timeout: time.Second, RetryDelay: time.Millisecond}, nil)
	c := New(client)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestUpstream_CreateSessionKeepsServerRecord(t *testing.T) {
	c := upstreamConsole(t, map[string]string{
		"GET /courses/instructor/my-courses": `[{"_id":"A","title":"Go Fundamentals"}]`,
		"GET /courses/A":                     `{"_id":"A","title":"Go Fundamentals","modules":[]}`,
		"POST /live-sessions/course/A":       `{"success":true,"session":{"_id":"s1","title":"Kickoff","course":"A","duration":60}}`,
	})
	at := time.Date(2024, 8, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, c.OpenSessionCreate())
	require.NoError(t, c.SubmitSession(context.Background(), domain.SessionInput{Title: "Kickoff", ScheduledAt: &at, Duration: 60}))

	v := c.View()
	require.Len(t, v.Sessions, 1)
	assert.Equal(t, "s1", v.Sessions[0].ID)
	assert.Equal(t, "Kickoff", v.Sessions[0].Title)
	assert.False(t, v.SessionForm.Open)
}

func TestSubmitSession_EmptyAnswerRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)
	c, b := loadedConsole(t, ctrl, cascadeData{}, WithPublisher(pub))
	at := time.Date(2024, 8, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, c.OpenSessionCreate())
	b.EXPECT().CreateSession(gomock.Any(), "A", gomock.Any()).Return(domain.LiveSession{}, nil)
	b.EXPECT().GetCourseSessions(gomock.Any(), "A", "").Return([]domain.LiveSession{
		{ID: "s0", Title: "Earlier"},
		{ID: "s1", Title: "Kickoff", ScheduledAt: at},
	}, nil)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e domain.ContentEvent) error {
		assert.Equal(t, domain.EventSessionCreated, e.Type)
		assert.Equal(t, "s1", e.EntityID)
		return nil
	})

	require.NoError(t, c.SubmitSession(context.Background(), domain.SessionInput{Title: "Kickoff", ScheduledAt: &at}))

	v := c.View()
	require.Len(t, v.Sessions, 2)
	for _, s := range v.Sessions {
		assert.NotEmpty(t, s.ID)
	}
	assert.False(t, v.SessionForm.Open)
}
