package domain

import "time"

// Chat is one raw chat document as returned by the API. Several documents
// may exist for the same student and course.
type Chat struct {
	ID       string    `json:"_id"`
	Student  Ref       `json:"student"`
	Course   Ref       `json:"course"`
	Messages []Message `json:"messages"`
}

type Message struct {
	ID        string    `json:"_id,omitempty"`
	Sender    Ref       `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

// At reports when the message was sent, preferring the explicit timestamp.
func (m Message) At() time.Time {
	if !m.Timestamp.IsZero() {
		return m.Timestamp
	}
	return m.CreatedAt
}
