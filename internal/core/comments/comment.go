package comments

import (
	"time"

	"Ripple/internal/core/users"
)

// Comment represents a comment bound to exactly one post and one author.
// Both references are immutable after creation.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// View is a comment resolved for API responses, with the author collapsed
// to a summary.
type View struct {
	CreatedAt time.Time     `json:"createdAt"`
	Content   string        `json:"content"`
	Author    users.Summary `json:"author"`
	ID        int64         `json:"id"`
	PostID    int64         `json:"postId"`
}
