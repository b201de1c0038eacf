package rassapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

func (c *Client) GetCourseBatches(ctx context.Context, courseID string) ([]domain.Batch, error) {
	return get[[]domain.Batch](ctx, c, "/batches/course/"+url.PathEscape(courseID), nil)
}

// GetMentorChats lists every chat the caller takes part in as a mentor,
// across all courses.
func (c *Client) GetMentorChats(ctx context.Context) ([]domain.Chat, error) {
	return get[[]domain.Chat](ctx, c, "/chats/mentor", nil)
}

func (c *Client) SendMessageToStudent(ctx context.Context, courseID, studentID, content string) error {
	path := "/chats/" + url.PathEscape(courseID) + "/" + url.PathEscape(studentID)
	_, err := send[ignored](ctx, c, http.MethodPost, path, map[string]string{"content": content})
	return err
}

func (c *Client) GetCourseForums(ctx context.Context, courseID string, category domain.PostCategory) ([]domain.ForumPost, error) {
	return get[[]domain.ForumPost](ctx, c, "/forums/course/"+url.PathEscape(courseID), withOptional("category", string(category)))
}

func (c *Client) CreatePost(ctx context.Context, in domain.PostInput) (domain.ForumPost, error) {
	return send[domain.ForumPost](ctx, c, http.MethodPost, "/forums", in)
}

// AddReply answers with the post including the new reply.
func (c *Client) AddReply(ctx context.Context, postID, content string) (domain.ForumPost, error) {
	return send[domain.ForumPost](ctx, c, http.MethodPost, "/forums/"+url.PathEscape(postID)+"/reply", map[string]string{"content": content})
}

// PinPost toggles the pinned flag server-side.
func (c *Client) PinPost(ctx context.Context, postID string) (domain.ForumPost, error) {
	return send[domain.ForumPost](ctx, c, http.MethodPost, "/forums/"+url.PathEscape(postID)+"/pin", nil)
}

// LockPost toggles the locked flag server-side.
func (c *Client) LockPost(ctx context.Context, postID string) (domain.ForumPost, error) {
	return send[domain.ForumPost](ctx, c, http.MethodPost, "/forums/"+url.PathEscape(postID)+"/lock", nil)
}
