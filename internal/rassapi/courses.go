package rassapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

type userFields = domain.User

// meResponse accepts both a bare user document and one wrapped in "user".
type meResponse struct {
	User *domain.User `json:"user"`
	userFields
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	resp, err := get[meResponse](ctx, c, "/auth/me", nil)
	if err != nil {
		return domain.User{}, err
	}
	if resp.User != nil {
		return *resp.User, nil
	}
	return resp.userFields, nil
}

func (c *Client) GetAllCourses(ctx context.Context, search string) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, c, "/courses", withOptional("search", search))
}

func (c *Client) GetInstructorCourses(ctx context.Context) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, c, "/courses/instructor/my-courses", nil)
}

func (c *Client) GetCourse(ctx context.Context, courseID string) (domain.Course, error) {
	return get[domain.Course](ctx, c, "/courses/"+url.PathEscape(courseID), nil)
}

// CreateModule answers with the course's full module list.
func (c *Client) CreateModule(ctx context.Context, courseID string, in domain.ModuleInput) ([]domain.Module, error) {
	return send[[]domain.Module](ctx, c, http.MethodPost, modulesPath(courseID), in)
}

func (c *Client) UpdateModule(ctx context.Context, courseID, moduleID string, in domain.ModuleInput) (domain.Module, error) {
	return send[domain.Module](ctx, c, http.MethodPut, modulesPath(courseID)+"/"+url.PathEscape(moduleID), in)
}

// DeleteModule answers with the modules left on the course.
func (c *Client) DeleteModule(ctx context.Context, courseID, moduleID string) ([]domain.Module, error) {
	resp, err := send[struct {
		Modules []domain.Module `json:"modules"`
	}](ctx, c, http.MethodDelete, modulesPath(courseID)+"/"+url.PathEscape(moduleID), nil)
	if err != nil {
		return nil, err
	}
	return resp.Modules, nil
}

func modulesPath(courseID string) string {
	return "/courses/" + url.PathEscape(courseID) + "/modules"
}
