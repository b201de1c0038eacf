// Package notifications lets administrators send in-app notifications to a
// course's students or to hand-picked users, and review what was sent.
// Delivery and storage belong to the upstream API.
package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/validation"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Backend interface {
	GetUsers(ctx context.Context, role domain.UserRole, search string) ([]domain.User, error)
	GetCourseUsers(ctx context.Context, courseID string) ([]domain.User, error)
	SendNotificationByCourse(ctx context.Context, in domain.CourseNotification) (domain.SendResult, error)
	SendNotificationToUsers(ctx context.Context, in domain.UserNotification) (domain.SendResult, error)
	GetNotificationHistory(ctx context.Context, q domain.HistoryQuery) (domain.NotificationHistory, error)
	GetNotificationStats(ctx context.Context) (domain.NotificationStats, error)
}

type Service struct {
	backend  Backend
	validate *validator.Validate
	logger   *logging.Logger
}

func NewService(backend Backend, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{backend: backend, validate: validation.New(), logger: logger}
}

// ListUsers returns the users a notification can be addressed to. An empty
// role or "all" lists every role.
func (s *Service) ListUsers(ctx context.Context, role, search string) ([]domain.User, error) {
	r, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	users, err := s.backend.GetUsers(ctx, r, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) CourseUsers(ctx context.Context, courseID string) ([]domain.User, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, fmt.Errorf("course id: %w", errdefs.ErrInvalidArgument)
	}
	users, err := s.backend.GetCourseUsers(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course users: %w", err)
	}
	return users, nil
}

// SendToCourse notifies every student enrolled in the course. The type
// defaults to course-update.
func (s *Service) SendToCourse(ctx context.Context, in domain.CourseNotification) (domain.SendResult, error) {
	in.CourseID = strings.TrimSpace(in.CourseID)
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	if in.Type == "" {
		in.Type = domain.NotificationCourseUpdate
	}
	if err := s.check(in); err != nil {
		return domain.SendResult{}, err
	}

	res, err := s.backend.SendNotificationByCourse(ctx, in)
	if err != nil {
		s.logger.Error(ctx, "course notification failed", zap.String("course_id", in.CourseID), zap.Error(err))
		return domain.SendResult{}, fmt.Errorf("send course notification: %w", err)
	}
	s.logSent(ctx, in.Type, res, zap.String("course_id", in.CourseID))
	return res, nil
}

// SendToUsers notifies each listed user once. Blank and repeated ids are
// dropped before sending. The type defaults to bulk.
func (s *Service) SendToUsers(ctx context.Context, in domain.UserNotification) (domain.SendResult, error) {
	in.UserIDs = uniqueIDs(in.UserIDs)
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	if in.Type == "" {
		in.Type = domain.NotificationBulk
	}
	if err := s.check(in); err != nil {
		return domain.SendResult{}, err
	}

	res, err := s.backend.SendNotificationToUsers(ctx, in)
	if err != nil {
		s.logger.Error(ctx, "user notification failed", zap.Int("recipients", len(in.UserIDs)), zap.Error(err))
		return domain.SendResult{}, fmt.Errorf("send user notification: %w", err)
	}
	s.logSent(ctx, in.Type, res, zap.Int("requested", len(in.UserIDs)))
	return res, nil
}

// History pages through sent notifications, newest first.
func (s *Service) History(ctx context.Context, q domain.HistoryQuery) (domain.NotificationHistory, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	switch q.EmailStatus {
	case "", domain.EmailPending, domain.EmailSent, domain.EmailFailed, domain.EmailNotRequired:
	default:
		return domain.NotificationHistory{}, fmt.Errorf("email status %q: %w", q.EmailStatus, errdefs.ErrInvalidArgument)
	}

	h, err := s.backend.GetNotificationHistory(ctx, q)
	if err != nil {
		return domain.NotificationHistory{}, fmt.Errorf("notification history: %w", err)
	}
	if h.CurrentPage == 0 {
		h.CurrentPage = q.Page
	}
	return h, nil
}

func (s *Service) Stats(ctx context.Context) (domain.NotificationStats, error) {
	st, err := s.backend.GetNotificationStats(ctx)
	if err != nil {
		return domain.NotificationStats{}, fmt.Errorf("notification stats: %w", err)
	}
	if st.EmailsPending < 0 {
		st.EmailsPending = 0
	}
	return st, nil
}

func (s *Service) check(in any) error {
	fields, err := validation.Fields(s.validate, in)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &validation.Error{Fields: fields}
	}
	return nil
}

func (s *Service) logSent(ctx context.Context, typ domain.NotificationType, res domain.SendResult, fields ...zap.Field) {
	fields = append(fields, zap.String("type", string(typ)), zap.Int("count", res.Count))
	if res.EmailResults != nil {
		fields = append(fields,
			zap.Int("emails_sent", len(res.EmailResults.Successful)),
			zap.Int("emails_failed", len(res.EmailResults.Failed)),
		)
		if len(res.EmailResults.Failed) > 0 {
			s.logger.Warn(ctx, "notification emails failed", fields...)
			return
		}
	}
	s.logger.Info(ctx, "notifications sent", fields...)
}

// ParseRole maps the user filter to a role. "" and "all" mean no filter.
func ParseRole(role string) (domain.UserRole, error) {
	switch r := domain.UserRole(strings.ToLower(strings.TrimSpace(role))); r {
	case "", "all":
		return "", nil
	case domain.UserRoleStudent, domain.UserRoleInstructor, domain.UserRoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("role %q: %w", role, errdefs.ErrInvalidArgument)
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
