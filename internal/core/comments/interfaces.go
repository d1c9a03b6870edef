package comments

import "context"

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	Delete(ctx context.Context, id int64) error

	// ListByPost returns the post's comments, newest first, each resolved
	// with its author summary.
	ListByPost(ctx context.Context, postID int64) ([]View, error)

	// DeleteAllForPost removes every comment referencing postID and returns
	// how many were deleted. Cascade helper for post deletion; runs before
	// the post row itself is removed.
	DeleteAllForPost(ctx context.Context, postID int64) (int64, error)
}
