package rassapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

func (c *Client) GetCourseAssignments(ctx context.Context, courseID, batchID string) ([]domain.Assignment, error) {
	return get[[]domain.Assignment](ctx, c, "/assignments/course/"+url.PathEscape(courseID), withOptional("batchId", batchID))
}

func (c *Client) CreateAssignment(ctx context.Context, in domain.AssignmentInput) (domain.Assignment, error) {
	return send[domain.Assignment](ctx, c, http.MethodPost, "/assignments", in)
}

func (c *Client) UpdateAssignment(ctx context.Context, id string, in domain.AssignmentInput) (domain.Assignment, error) {
	return send[domain.Assignment](ctx, c, http.MethodPut, "/assignments/"+url.PathEscape(id), in)
}

func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	_, err := send[ignored](ctx, c, http.MethodDelete, "/assignments/"+url.PathEscape(id), nil)
	return err
}

// GradeAssignment answers with the assignment carrying the new grade.
func (c *Client) GradeAssignment(ctx context.Context, id string, in domain.GradeInput) (domain.Assignment, error) {
	return send[domain.Assignment](ctx, c, http.MethodPost, "/assignments/"+url.PathEscape(id)+"/grade", in)
}
