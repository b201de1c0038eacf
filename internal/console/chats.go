package console

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/chat"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

// SelectChat opens the thread with the given studentId-courseId key. Only
// threads of the selected course can be opened.
func (c *Console) SelectChat(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return errdefs.ErrNoCourseSelected
	}
	if _, ok := chat.Find(chat.ForCourse(c.threads, c.selected.ID), key); !ok {
		return fmt.Errorf("chat %s: %w", key, errdefs.ErrNotFound)
	}
	c.chatKey = key
	return nil
}

// SendMessage posts content to the selected thread's student, then reloads
// every chat and re-attaches the selection by key. If the thread no longer
// exists after the reload the selection is cleared.
func (c *Console) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return c.fail(invalid("Message cannot be empty."))
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	key := c.chatKey
	thread, ok := chat.Find(c.threads, key)
	c.mu.Unlock()
	if key == "" || !ok {
		return errdefs.ErrNothingSelected
	}

	if err := c.backend.SendMessageToStudent(ctx, thread.Course.ID, thread.Student.ID, content); err != nil {
		c.logger.Error(ctx, "failed to send chat message",
			zap.String("course_id", thread.Course.ID),
			zap.String("student_id", thread.Student.ID),
			zap.Error(err),
		)
		return c.fail(alertFor(err, "Failed to send message."))
	}
	c.publish(ctx, domain.ContentEvent{
		Type:      domain.EventChatMessageSent,
		CourseID:  course.ID,
		EntityID:  thread.Key,
		StudentID: thread.Student.ID,
	})

	chats, err := c.backend.GetMentorChats(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(ctx, gen, "reload chats") {
		return nil
	}
	if err != nil {
		c.loadErrors[storeChats] = err.Error()
		c.logger.Warn(ctx, "failed to reload chats after send", zap.Error(err))
		return nil
	}
	delete(c.loadErrors, storeChats)
	c.threads = chat.Group(chats)
	if _, ok := chat.Find(c.threads, thread.Key); !ok {
		c.logger.Warn(ctx, "chat thread vanished after reload", zap.String("key", thread.Key))
		c.chatKey = ""
	}
	return nil
}
