package domain

import "time"

type EventType string

const (
	EventFree EventType = "Free"
	EventPaid EventType = "Paid"
)

type AgendaItem struct {
	Day         string `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Event is a public academy event such as a workshop or webinar.
type Event struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AboutEvent  string       `json:"aboutEvent,omitempty"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	Type        EventType    `json:"type"`
	Price       float64      `json:"price"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Highlights  []string     `json:"highlights,omitempty"`
	Agenda      []AgendaItem `json:"agenda,omitempty"`
}

func (e Event) GetID() string { return e.ID }
