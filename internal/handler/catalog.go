package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/catalog"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

type CatalogBackend interface {
	GetAllCourses(ctx context.Context, search string) ([]domain.Course, error)
}

type CatalogHandler struct {
	backend CatalogBackend
}

func NewCatalogHandler(backend CatalogBackend) *CatalogHandler {
	return &CatalogHandler{backend: backend}
}

func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListCourses)
}

type catalogResponse struct {
	Courses    []domain.Course `json:"courses"`
	Categories []string        `json:"categories"`
}

// ListCourses fetches the whole catalog and filters locally: upstream search
// does not cover categories, and the category list must not shrink with it.
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortKey, err := catalog.ParseSort(q.Get("sort"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	filter := catalog.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     sortKey,
	}
	if v := q.Get("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "published must be true or false")
			return
		}
		filter.PublishedOnly = published
	}

	courses, err := h.backend.GetAllCourses(r.Context(), "")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	categories := catalog.Categories(courses)
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Courses:    catalog.Apply(courses, filter),
		Categories: categories,
	})
}
