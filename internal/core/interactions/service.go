package interactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/notifications"
	"Ripple/internal/core/posts"
	"Ripple/internal/core/users"
)

type interactionService struct {
	users    users.Service
	posts    posts.PostRepository
	comments comments.CommentRepository
	emitter  notifications.Emitter
	images   ImageStore
	logger   *slog.Logger
}

// NewService creates the interaction use-case service
func NewService(
	userService users.Service,
	postRepo posts.PostRepository,
	commentRepo comments.CommentRepository,
	emitter notifications.Emitter,
	images ImageStore,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &interactionService{
		users:    userService,
		posts:    postRepo,
		comments: commentRepo,
		emitter:  emitter,
		images:   images,
		logger:   logger,
	}
}

// resolvePrincipal maps the external principal id to the internal user.
// Runs before any other side effect of a mutating use case.
func (s *interactionService) resolvePrincipal(ctx context.Context, authID string) (*users.User, error) {
	user, err := s.users.Resolve(ctx, authID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}
	return user, nil
}

// ListPosts returns all posts, newest first, resolved with author and
// comment summaries
func (s *interactionService) ListPosts(ctx context.Context) ([]posts.View, error) {
	return s.posts.ListAll(ctx)
}

// GetPost returns one resolved post
func (s *interactionService) GetPost(ctx context.Context, postID int64) (*posts.View, error) {
	return s.posts.GetView(ctx, postID)
}

// ListUserPosts returns the named user's posts, newest first
func (s *interactionService) ListUserPosts(ctx context.Context, username string) ([]posts.View, error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(ctx, owner.ID)
}

// CreatePost validates, uploads the image if one was sent, and stores the
// post. The image upload happens before the database write so an upload
// failure leaves no partial state.
func (s *interactionService) CreatePost(ctx context.Context, authID string, req CreatePostRequest) (*posts.Post, error) {
	actor, err := s.resolvePrincipal(ctx, authID)
	if err != nil {
		return nil, err
	}

	if req.Content == "" && len(req.Image) == 0 {
		return nil, &posts.ValidationError{Reason: "post must contain either text or image"}
	}

	imageURL := ""
	if len(req.Image) > 0 {
		imageURL, err = s.images.Upload(ctx, req.Image, req.ImageType)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
	}

	post := &posts.Post{
		AuthorID: actor.ID,
		Content:  req.Content,
		ImageURL: imageURL,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// DeletePost removes a post and cascades over its comments. Owner only.
// Comments go first so a failure partway leaves no comment pointing at a
// missing post.
func (s *interactionService) DeletePost(ctx context.Context, authID string, postID int64) error {
	actor, err := s.resolvePrincipal(ctx, authID)
	if err != nil {
		return err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !isOwner(actor.ID, post.AuthorID) {
		return ErrForbidden
	}

	deleted, err := s.comments.DeleteAllForPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to cascade comments for post %d: %w", postID, err)
	}
	if deleted > 0 {
		s.logger.Info("cascaded comment deletion", "post", postID, "comments", deleted)
	}

	return s.posts.Delete(ctx, postID)
}

// ToggleLike flips the actor's membership in the post's like set. Direction
// is decided from the loaded post; the repository primitives themselves are
// idempotent set mutations, so a concurrent duplicate toggle cannot
// double-count.
func (s *interactionService) ToggleLike(ctx context.Context, authID string, postID int64) (LikeResult, error) {
	actor, err := s.resolvePrincipal(ctx, authID)
	if err != nil {
		return "", err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	if post.Liked(actor.ID) {
		if err := s.posts.RemoveLike(ctx, postID, actor.ID); err != nil {
			return "", fmt.Errorf("failed to remove like: %w", err)
		}
		return Unliked, nil
	}

	if err := s.posts.AddLike(ctx, postID, actor.ID); err != nil {
		return "", fmt.Errorf("failed to add like: %w", err)
	}

	s.emitter.Emit(ctx, actor.ID, post.AuthorID, notifications.TypeLike, postID, nil)

	return Liked, nil
}

// ListComments returns a post's comments, newest first, with author
// summaries
func (s *interactionService) ListComments(ctx context.Context, postID int64) ([]comments.View, error) {
	return s.comments.ListByPost(ctx, postID)
}

// CreateComment stores a comment and appends its id to the parent post's
// reference list. If the append fails after the comment row was written, the
// orphaned comment is deleted before the error is returned so the
// bidirectional invariant holds either way.
func (s *interactionService) CreateComment(ctx context.Context, authID string, postID int64, content string) (*comments.Comment, error) {
	actor, err := s.resolvePrincipal(ctx, authID)
	if err != nil {
		return nil, err
	}

	if err := comments.ValidateContent(content); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, &comments.Comment{
		PostID:   postID,
		AuthorID: actor.ID,
		Content:  content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.posts.AppendComment(ctx, postID, comment.ID); err != nil {
		// Compensate: drop the orphaned comment rather than leave the
		// reference list out of sync with the comment table.
		if delErr := s.comments.Delete(ctx, comment.ID); delErr != nil {
			s.logger.Error("failed to clean up orphaned comment",
				"error", delErr,
				"comment", comment.ID,
				"post", postID)
		}
		return nil, fmt.Errorf("failed to attach comment to post %d: %w", postID, err)
	}

	s.emitter.Emit(ctx, actor.ID, post.AuthorID, notifications.TypeComment, postID, &comment.ID)

	return comment, nil
}

// DeleteComment removes a comment. Author only. The post's reference list is
// updated first so no dangling reference survives the row deletion.
func (s *interactionService) DeleteComment(ctx context.Context, authID string, commentID int64) error {
	actor, err := s.resolvePrincipal(ctx, authID)
	if err != nil {
		return err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !isOwner(actor.ID, comment.AuthorID) {
		return ErrForbidden
	}

	if err := s.posts.RemoveComment(ctx, comment.PostID, commentID); err != nil {
		return fmt.Errorf("failed to detach comment from post %d: %w", comment.PostID, err)
	}

	return s.comments.Delete(ctx, commentID)
}
