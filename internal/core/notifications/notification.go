package notifications

import (
	"time"
)

// Notification types emitted by the interaction layer
const (
	TypeLike    = "like"
	TypeComment = "comment"
)

// Notification records an interaction event for its recipient. Created only
// as a side effect of like/comment creation; this core never deletes them.
// SenderID != RecipientID always holds: self-notifications are suppressed
// before a row is written.
type Notification struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Type        string    `json:"type" db:"type"`
	CommentID   *int64    `json:"commentId,omitempty" db:"comment_id"`
	ID          int64     `json:"id" db:"id"`
	SenderID    int64     `json:"senderId" db:"sender_id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	PostID      int64     `json:"postId" db:"post_id"`
}
