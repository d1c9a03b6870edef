package interactions

import (
	"context"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/posts"
)

// ImageStore is the external collaborator that turns raw image bytes into a
// durable URL. Implemented against an S3-compatible object store.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// CreatePostRequest carries the decoded body of a create-post call. Image is
// the raw upload (nil when the post is text-only).
type CreatePostRequest struct {
	Content   string
	Image     []byte
	ImageType string
}

// LikeResult reports which direction a toggle resolved to
type LikeResult string

const (
	Liked   LikeResult = "liked"
	Unliked LikeResult = "unliked"
)

// Service is the use-case layer for feed interactions. Each mutating
// operation resolves the acting principal first and aborts with zero side
// effects if resolution, validation, or authorization fails; notification
// emission is the only best-effort tail.
type Service interface {
	ListPosts(ctx context.Context) ([]posts.View, error)
	GetPost(ctx context.Context, postID int64) (*posts.View, error)
	ListUserPosts(ctx context.Context, username string) ([]posts.View, error)

	CreatePost(ctx context.Context, authID string, req CreatePostRequest) (*posts.Post, error)
	DeletePost(ctx context.Context, authID string, postID int64) error
	ToggleLike(ctx context.Context, authID string, postID int64) (LikeResult, error)

	ListComments(ctx context.Context, postID int64) ([]comments.View, error)
	CreateComment(ctx context.Context, authID string, postID int64, content string) (*comments.Comment, error)
	DeleteComment(ctx context.Context, authID string, commentID int64) error
}
