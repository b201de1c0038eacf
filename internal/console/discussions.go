package console

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

// CreateDiscussion posts to the selected course's forum. The new post is
// shown first.
func (c *Console) CreateDiscussion(ctx context.Context, in domain.PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" || in.Content == "" {
		return c.fail(invalid("Title and content are required."))
	}
	if in.Category == "" {
		in.Category = domain.CategoryGeneral
	}
	if !in.Category.IsValid() {
		return c.fail(invalid(fmt.Sprintf("Unknown discussion category %q.", in.Category)))
	}

	c.mu.Lock()
	course, gen, err := c.begin()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	in.Course = course.ID

	post, err := c.backend.CreatePost(ctx, in)
	if err != nil {
		c.logger.Error(ctx, "failed to create discussion", zap.String("course_id", course.ID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to create discussion."))
	}

	c.mu.Lock()
	if !c.staleLocked(ctx, gen, "create discussion") {
		c.discussions.Prepend(post)
	}
	c.mu.Unlock()
	c.publish(ctx, domain.ContentEvent{Type: domain.EventDiscussionCreated, CourseID: course.ID, EntityID: post.ID, Title: post.Title})
	return nil
}

// ReplyToDiscussion replaces the post with the server's copy carrying the
// new reply.
func (c *Console) ReplyToDiscussion(ctx context.Context, postID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return c.fail(invalid("Reply cannot be empty."))
	}

	course, gen, post, err := c.beginPost(postID)
	if err != nil {
		return err
	}

	updated, err := c.backend.AddReply(ctx, postID, content)
	if err != nil {
		c.logger.Error(ctx, "failed to reply to discussion", zap.String("post_id", postID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to post reply."))
	}
	c.applyPost(ctx, gen, postID, updated, "reply to discussion")
	c.publish(ctx, domain.ContentEvent{Type: domain.EventDiscussionReplied, CourseID: course.ID, EntityID: postID, Title: post.Title})
	return nil
}

// TogglePin flips the post's pinned flag.
func (c *Console) TogglePin(ctx context.Context, postID string) error {
	course, gen, post, err := c.beginPost(postID)
	if err != nil {
		return err
	}

	updated, err := c.backend.PinPost(ctx, postID)
	if err != nil {
		c.logger.Error(ctx, "failed to pin discussion", zap.String("post_id", postID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to update discussion."))
	}
	c.applyPost(ctx, gen, postID, updated, "pin discussion")
	c.publish(ctx, domain.ContentEvent{Type: domain.EventDiscussionPinned, CourseID: course.ID, EntityID: postID, Title: post.Title})
	return nil
}

// ToggleLock flips the post's locked flag.
func (c *Console) ToggleLock(ctx context.Context, postID string) error {
	course, gen, post, err := c.beginPost(postID)
	if err != nil {
		return err
	}

	updated, err := c.backend.LockPost(ctx, postID)
	if err != nil {
		c.logger.Error(ctx, "failed to lock discussion", zap.String("post_id", postID), zap.Error(err))
		return c.fail(alertFor(err, "Failed to update discussion."))
	}
	c.applyPost(ctx, gen, postID, updated, "lock discussion")
	c.publish(ctx, domain.ContentEvent{Type: domain.EventDiscussionLocked, CourseID: course.ID, EntityID: postID, Title: post.Title})
	return nil
}

func (c *Console) beginPost(postID string) (domain.Course, uint64, domain.ForumPost, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	course, gen, err := c.begin()
	if err != nil {
		return domain.Course{}, 0, domain.ForumPost{}, err
	}
	post, ok := c.discussions.Get(postID)
	if !ok {
		return domain.Course{}, 0, domain.ForumPost{}, fmt.Errorf("discussion %s: %w", postID, errdefs.ErrNotFound)
	}
	return course, gen, post, nil
}

func (c *Console) applyPost(ctx context.Context, gen uint64, postID string, updated domain.ForumPost, what string) {
	if updated.ID == "" {
		updated.ID = postID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.staleLocked(ctx, gen, what) {
		if prev, ok := c.discussions.Get(updated.ID); ok {
			updated = updated.KeepRefs(prev)
		}
		c.discussions.Upsert(updated)
	}
}
