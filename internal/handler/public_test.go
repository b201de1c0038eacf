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
	"github.com/raasacademy2024-maker/RASS-sub002/internal/leads"
)

type fakeCatalogBackend struct {
	courses []domain.Course
	search  string
}

func (f *fakeCatalogBackend) GetAllCourses(_ context.Context, search string) ([]domain.Course, error) {
	f.search = search
	return f.courses, nil
}

func TestCatalogHandler_ListCourses(t *testing.T) {
	backend := &fakeCatalogBackend{courses: []domain.Course{
		{ID: "1", Title: "Go", Category: "Programming", Price: 30, EnrollmentCount: 5, IsPublished: true},
		{ID: "2", Title: "SQL", Category: "Data", Price: 10, EnrollmentCount: 50, IsPublished: true},
		{ID: "3", Title: "Draft", Category: "Data", Price: 0},
	}}
	r := chi.NewRouter()
	r.Route("/courses", NewCatalogHandler(backend).RegisterRoutes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?category=data&published=true&sort=price", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got catalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Courses, 1)
	assert.Equal(t, "2", got.Courses[0].ID)
	assert.Equal(t, []string{"Programming", "Data"}, got.Categories)
	assert.Empty(t, backend.search)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?sort=rating", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?published=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakeLeadService struct {
	ambassador  int
	partnership int
	err         error
}

func (f *fakeLeadService) SubmitAmbassador(context.Context, domain.AmbassadorApplication) error {
	f.ambassador++
	return f.err
}

func (f *fakeLeadService) SubmitPartnership(context.Context, domain.PartnershipRequest) error {
	f.partnership++
	return f.err
}

type denyAfter struct{ left int }

func (d *denyAfter) Allow(string) bool {
	d.left--
	return d.left >= 0
}

func leadsRouter(service LeadService, limiter RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Route("/leads", NewLeadsHandler(service, limiter).RegisterRoutes)
	return r
}

func TestLeadsHandler_Submit(t *testing.T) {
	service := &fakeLeadService{}
	h := leadsRouter(service, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/ambassador", strings.NewReader(`{"name":"Priya"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/university", strings.NewReader(`{"name":"Dean"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/university", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 1, service.ambassador)
	assert.Equal(t, 1, service.partnership)
}

func TestLeadsHandler_ValidationFields(t *testing.T) {
	service := &fakeLeadService{err: &leads.ValidationError{Fields: map[string]string{"phone": "must be exactly 10 digits for India"}}}
	h := leadsRouter(service, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/ambassador", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var got fieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "invalid form", got.Error)
	assert.Equal(t, "must be exactly 10 digits for India", got.Fields["phone"])
}

func TestLeadsHandler_RateLimited(t *testing.T) {
	service := &fakeLeadService{}
	h := leadsRouter(service, &denyAfter{left: 1})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/ambassador", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leads/ambassador", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, service.ambassador)
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/leads/ambassador", nil)
	r.RemoteAddr = "203.0.113.7:5123"
	assert.Equal(t, "203.0.113.7", clientKey(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientKey(r))
}
