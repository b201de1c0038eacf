package domain

import "time"

type PostCategory string

const (
	CategoryGeneral      PostCategory = "general"
	CategoryAssignment   PostCategory = "assignment"
	CategoryTechnical    PostCategory = "technical"
	CategoryAnnouncement PostCategory = "announcement"
)

func (c PostCategory) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryAssignment, CategoryTechnical, CategoryAnnouncement:
		return true
	default:
		return false
	}
}

type ForumPost struct {
	ID        string       `json:"_id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  PostCategory `json:"category"`
	Author    Ref          `json:"author"`
	Course    Ref          `json:"course"`
	Replies   []Reply      `json:"replies"`
	Likes     []string     `json:"likes,omitempty"`
	IsPinned  bool         `json:"isPinned"`
	IsLocked  bool         `json:"isLocked"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (p ForumPost) GetID() string { return p.ID }

type Reply struct {
	ID        string    `json:"_id"`
	Author    Ref       `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostInput struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Category PostCategory `json:"category"`
	Course   string       `json:"course"`
}

// KeepRefs returns p with the populated author refs of prev restored wherever
// p carries bare ids.
func (p ForumPost) KeepRefs(prev ForumPost) ForumPost {
	idx := refIndex{}
	idx.add(prev.Author)
	for _, r := range prev.Replies {
		idx.add(r.Author)
	}

	p.Author = idx.fill(p.Author)
	p.Course = p.Course.Or(prev.Course)
	if len(p.Replies) > 0 {
		replies := make([]Reply, len(p.Replies))
		copy(replies, p.Replies)
		for i := range replies {
			replies[i].Author = idx.fill(replies[i].Author)
		}
		p.Replies = replies
	}
	return p
}
