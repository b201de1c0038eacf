package domain

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionLive      SessionStatus = "live"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionScheduled, SessionLive, SessionCompleted, SessionCancelled:
		return true
	default:
		return false
	}
}

type LiveSession struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Course      Ref           `json:"course"`
	Batch       *Ref          `json:"batch,omitempty"`
	Instructor  Ref           `json:"instructor"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	Duration    int           `json:"duration"`
	MeetingLink string        `json:"meetingLink,omitempty"`
	Status      SessionStatus `json:"status,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (s LiveSession) GetID() string { return s.ID }

type SessionInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty" validate:"required"`
	Duration    int        `json:"duration" validate:"gte=0"`
	MeetingLink string     `json:"meetingLink"`
	Course      string     `json:"course,omitempty"`
	Batch       string     `json:"batch,omitempty"`
}

func NewSessionInput() SessionInput {
	return SessionInput{Duration: 60}
}

func SessionInputFrom(s LiveSession) SessionInput {
	in := SessionInput{
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		MeetingLink: s.MeetingLink,
	}
	if !s.ScheduledAt.IsZero() {
		at := s.ScheduledAt
		in.ScheduledAt = &at
	}
	if s.Batch != nil {
		in.Batch = s.Batch.ID
	}
	return in
}
