package posts

import (
	"time"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/users"
)

// Post represents a feed post. A post must carry text content, an image, or
// both; this is enforced at creation and never relaxed afterwards.
//
// CommentIDs and LikeUserIDs are denormalized reference columns. CommentIDs
// mirrors the set of comment rows whose post_id points here (insertion order,
// oldest first); LikeUserIDs is a set, membership semantics only. Both are
// maintained exclusively through the repository's atomic mutation primitives,
// never written by callers directly.
type Post struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Content     string    `json:"content" db:"content"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	CommentIDs  []int64   `json:"commentIds" db:"comment_ids"`
	LikeUserIDs []int64   `json:"likeUserIds" db:"like_user_ids"`
	ID          int64     `json:"id" db:"id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
}

// Liked reports whether userID is a member of the post's like set.
func (p *Post) Liked(userID int64) bool {
	for _, id := range p.LikeUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// View is a post resolved for API responses: the author collapsed to a
// summary and every comment resolved with its own author summary.
type View struct {
	CreatedAt   time.Time       `json:"createdAt"`
	Content     string          `json:"content"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Author      users.Summary   `json:"author"`
	Comments    []comments.View `json:"comments"`
	LikeUserIDs []int64         `json:"likeUserIds"`
	ID          int64           `json:"id"`
	LikeCount   int             `json:"likeCount"`
}
