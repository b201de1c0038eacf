package rassapi

import (
	"context"
	"encoding/json"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

// eventsResponse accepts both a bare event list and one wrapped in "events".
type eventsResponse []domain.Event

func (r *eventsResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Events []domain.Event `json:"events"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*r = wrapped.Events
		return nil
	}
	var bare []domain.Event
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*r = bare
	return nil
}

func (c *Client) GetEvents(ctx context.Context) ([]domain.Event, error) {
	resp, err := get[eventsResponse](ctx, c, "/admin/events", nil)
	if err != nil {
		return nil, err
	}
	return []domain.Event(resp), nil
}
