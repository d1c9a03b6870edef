package posts

import "context"

// PostRepository defines the interface for post persistence.
//
// AddLike/RemoveLike and AppendComment/RemoveComment are the only writers of
// the denormalized reference columns. Each must be implemented as a single
// atomic set-membership update so that concurrent invocations cannot
// double-count or drop entries; read-modify-write at the caller is not
// acceptable.
type PostRepository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Delete(ctx context.Context, id int64) error

	// ListAll returns every post, newest first, fully resolved.
	ListAll(ctx context.Context) ([]View, error)
	// GetView returns one post fully resolved.
	GetView(ctx context.Context, id int64) (*View, error)
	// ListByAuthor returns the author's posts, newest first, fully resolved.
	ListByAuthor(ctx context.Context, authorID int64) ([]View, error)

	// AddLike adds userID to the post's like set. No-op if already present.
	AddLike(ctx context.Context, postID, userID int64) error
	// RemoveLike removes userID from the post's like set. No-op if absent.
	RemoveLike(ctx context.Context, postID, userID int64) error

	// AppendComment appends commentID to the post's comment list. Called
	// exactly once per comment creation, after the comment row exists.
	AppendComment(ctx context.Context, postID, commentID int64) error
	// RemoveComment removes commentID from the post's comment list. Called
	// before the comment row is deleted so no dangling reference survives.
	RemoveComment(ctx context.Context, postID, commentID int64) error
}
