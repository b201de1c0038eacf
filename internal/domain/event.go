package domain

import "time"

type ContentEventType string

const (
	EventModuleCreated        ContentEventType = "module.created"
	EventModuleUpdated        ContentEventType = "module.updated"
	EventModuleDeleted        ContentEventType = "module.deleted"
	EventAssignmentCreated    ContentEventType = "assignment.created"
	EventAssignmentUpdated    ContentEventType = "assignment.updated"
	EventAssignmentDeleted    ContentEventType = "assignment.deleted"
	EventAssignmentGraded     ContentEventType = "assignment.graded"
	EventSessionCreated       ContentEventType = "session.created"
	EventSessionUpdated       ContentEventType = "session.updated"
	EventSessionDeleted       ContentEventType = "session.deleted"
	EventSessionStatusChanged ContentEventType = "session.status_changed"
	EventChatMessageSent      ContentEventType = "chat.message_sent"
	EventDiscussionCreated    ContentEventType = "discussion.created"
	EventDiscussionReplied    ContentEventType = "discussion.replied"
	EventDiscussionPinned     ContentEventType = "discussion.pinned"
	EventDiscussionLocked     ContentEventType = "discussion.locked"
)

// ContentEvent records one successful change an instructor made to a
// course's content.
type ContentEvent struct {
	Type       ContentEventType `json:"type"`
	CourseID   string           `json:"course_id"`
	EntityID   string           `json:"entity_id"`
	ActorID    string           `json:"actor_id,omitempty"`
	Title      string           `json:"title,omitempty"`
	StudentID  string           `json:"student_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
