package domain

import "time"

type NotificationType string

const (
	NotificationCourseUpdate NotificationType = "course-update"
	NotificationAnnouncement NotificationType = "announcement"
	NotificationSystem       NotificationType = "system"
	NotificationBulk         NotificationType = "bulk"
)

// IsSendable reports whether staff may send notifications of this type by
// hand. The other stored types are raised by the platform itself.
func (t NotificationType) IsSendable() bool {
	switch t {
	case NotificationCourseUpdate, NotificationAnnouncement, NotificationSystem, NotificationBulk:
		return true
	default:
		return false
	}
}

type EmailStatus string

const (
	EmailPending     EmailStatus = "pending"
	EmailSent        EmailStatus = "sent"
	EmailFailed      EmailStatus = "failed"
	EmailNotRequired EmailStatus = "not-required"
)

// CourseNotification goes to every student enrolled in CourseID.
type CourseNotification struct {
	CourseID  string           `json:"courseId" validate:"required"`
	Title     string           `json:"title" validate:"required,max=200"`
	Message   string           `json:"message" validate:"required,max=5000"`
	Type      NotificationType `json:"type" validate:"oneof=course-update announcement system bulk"`
	SendEmail bool             `json:"sendEmail"`
}

// UserNotification goes to a hand-picked list of users.
type UserNotification struct {
	UserIDs   []string         `json:"userIds" validate:"min=1,dive,required"`
	Title     string           `json:"title" validate:"required,max=200"`
	Message   string           `json:"message" validate:"required,max=5000"`
	Type      NotificationType `json:"type" validate:"oneof=course-update announcement system bulk"`
	SendEmail bool             `json:"sendEmail"`
}

type EmailOutcome struct {
	Email     string `json:"email"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type EmailResults struct {
	Successful []EmailOutcome `json:"successful"`
	Failed     []EmailOutcome `json:"failed"`
}

// SendResult is the upstream answer to a send. EmailResults is present only
// when email delivery was requested.
type SendResult struct {
	Message      string        `json:"message"`
	Count        int           `json:"count"`
	Course       string        `json:"course,omitempty"`
	EmailResults *EmailResults `json:"emailResults,omitempty"`
}

type Notification struct {
	ID          string           `json:"_id"`
	Recipient   Ref              `json:"recipient"`
	SentBy      *Ref             `json:"sentBy,omitempty"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	EmailSent   bool             `json:"emailSent"`
	EmailStatus EmailStatus      `json:"emailStatus,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type HistoryQuery struct {
	Page        int
	Limit       int
	Type        NotificationType
	EmailStatus EmailStatus
}

type NotificationHistory struct {
	Notifications []Notification `json:"notifications"`
	TotalPages    int            `json:"totalPages"`
	CurrentPage   int            `json:"currentPage"`
	Total         int            `json:"total"`
}

type TypeCount struct {
	Type  NotificationType `json:"_id"`
	Count int              `json:"count"`
}

type NotificationStats struct {
	TotalNotifications  int            `json:"totalNotifications"`
	EmailsSent          int            `json:"emailsSent"`
	EmailsFailed        int            `json:"emailsFailed"`
	EmailsPending       int            `json:"emailsPending"`
	ByType              []TypeCount    `json:"byType"`
	RecentNotifications []Notification `json:"recentNotifications"`
}
