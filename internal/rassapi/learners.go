package rassapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

func (c *Client) GetMyEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	return get[[]domain.Enrollment](ctx, c, "/enrollments/my-courses", nil)
}

func (c *Client) GetBatchLeaderboard(ctx context.Context, batchID string) (domain.Leaderboard, error) {
	return get[domain.Leaderboard](ctx, c, "/analytics/batch/"+url.PathEscape(batchID)+"/leaderboard", nil)
}

func (c *Client) SubmitAmbassadorForm(ctx context.Context, form domain.AmbassadorApplication) error {
	_, err := send[ignored](ctx, c, http.MethodPost, "/student-ambassador-form", form)
	return err
}

func (c *Client) SubmitUniversityPartnership(ctx context.Context, form domain.PartnershipRequest) error {
	_, err := send[ignored](ctx, c, http.MethodPost, "/university-partnership", form)
	return err
}
