package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

type EventSortKey string

const (
	// EventSortNone keeps the order the server sent.
	EventSortNone  EventSortKey = ""
	EventSortDate  EventSortKey = "date"
	EventSortTitle EventSortKey = "title"
	EventSortPrice EventSortKey = "price"
)

func ParseEventSort(s string) (EventSortKey, error) {
	switch key := EventSortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case EventSortNone, EventSortDate, EventSortTitle, EventSortPrice:
		return key, nil
	default:
		return "", fmt.Errorf("%w: unknown event sort %q", errdefs.ErrInvalidArgument, s)
	}
}

// ParseEventType accepts "", "all", "free" and "paid" in any case. The empty
// result means every type.
func ParseEventType(s string) (domain.EventType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return "", nil
	case "free":
		return domain.EventFree, nil
	case "paid":
		return domain.EventPaid, nil
	default:
		return "", fmt.Errorf("%w: unknown event type %q", errdefs.ErrInvalidArgument, s)
	}
}

type EventFilter struct {
	Search string
	Type   domain.EventType
	Sort   EventSortKey
}

// ApplyEvents returns the matching events in a new slice. Search looks at
// title, description and location.
func ApplyEvents(events []domain.Event, f EventFilter) []domain.Event {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if f.Type != "" && !strings.EqualFold(string(e.Type), string(f.Type)) {
			continue
		}
		if search != "" && !eventMatches(e, search) {
			continue
		}
		out = append(out, e)
	}

	switch f.Sort {
	case EventSortDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case EventSortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case EventSortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	}
	return out
}

func eventMatches(e domain.Event, search string) bool {
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Location), search)
}
