package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.PostRepository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post. The reference columns start empty; they are
// only ever touched by the atomic mutation primitives below.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	if err := posts.ValidateNew(post.Content, post.ImageURL); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO posts (author_id, content, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.AuthorID, post.Content, post.ImageURL).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post.CommentIDs = []int64{}
	post.LikeUserIDs = []int64{}
	return post, nil
}

// GetByID retrieves a post by id, reference columns included
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, author_id, content, image_url, comment_ids, like_user_ids, created_at
		FROM posts WHERE id = $1`

	post := &posts.Post{}
	var commentIDs, likeUserIDs pq.Int64Array

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Content, &post.ImageURL,
			&commentIDs, &likeUserIDs, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.CommentIDs = commentIDs
	post.LikeUserIDs = likeUserIDs
	return post, nil
}

// Delete removes a post row. The caller cascades comment deletion first.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// AddLike adds userID to the like set in one conditional update. The
// containment guard makes concurrent duplicate adds a no-op instead of a
// double entry.
func (r *postgresPostRepo) AddLike(ctx context.Context, postID, userID int64) error {
	query := `
		UPDATE posts
		SET like_user_ids = array_append(like_user_ids, $2)
		WHERE id = $1 AND NOT (like_user_ids @> ARRAY[$2]::bigint[])`

	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

// RemoveLike removes userID from the like set. No-op when absent.
func (r *postgresPostRepo) RemoveLike(ctx context.Context, postID, userID int64) error {
	query := `
		UPDATE posts
		SET like_user_ids = array_remove(like_user_ids, $2)
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// AppendComment appends commentID to the post's comment list. The guard
// keeps a retried append from inserting the id twice.
func (r *postgresPostRepo) AppendComment(ctx context.Context, postID, commentID int64) error {
	query := `
		UPDATE posts
		SET comment_ids = array_append(comment_ids, $2)
		WHERE id = $1 AND NOT (comment_ids @> ARRAY[$2]::bigint[])`

	result, err := r.db.ExecContext(ctx, query, postID, commentID)
	if err != nil {
		return fmt.Errorf("failed to append comment reference: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		// Distinguish a vanished post from an already-present reference
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if !exists {
			return posts.ErrPostNotFound
		}
	}
	return nil
}

// RemoveComment removes commentID from the post's comment list
func (r *postgresPostRepo) RemoveComment(ctx context.Context, postID, commentID int64) error {
	query := `
		UPDATE posts
		SET comment_ids = array_remove(comment_ids, $2)
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, postID, commentID); err != nil {
		return fmt.Errorf("failed to remove comment reference: %w", err)
	}
	return nil
}

const postViewColumns = `
	p.id, p.content, p.image_url, p.like_user_ids, p.created_at,
	u.id, u.username, u.first_name, u.last_name, u.avatar_url`

// ListAll returns every post, newest first, resolved with author summaries
// and embedded comments
func (r *postgresPostRepo) ListAll(ctx context.Context) ([]posts.View, error) {
	query := `
		SELECT ` + postViewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC`

	return r.queryViews(ctx, query)
}

// ListByAuthor returns one author's posts, newest first, resolved
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]posts.View, error) {
	query := `
		SELECT ` + postViewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC`

	return r.queryViews(ctx, query, authorID)
}

// GetView returns a single resolved post
func (r *postgresPostRepo) GetView(ctx context.Context, id int64) (*posts.View, error) {
	query := `
		SELECT ` + postViewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`

	views, err := r.queryViews(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, posts.ErrPostNotFound
	}
	return &views[0], nil
}

// queryViews runs a post view query and resolves the embedded comments for
// every returned post in a second batch query.
func (r *postgresPostRepo) queryViews(ctx context.Context, query string, args ...interface{}) ([]posts.View, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeRows(rows)

	views := []posts.View{}
	postIDs := []int64{}
	for rows.Next() {
		var v posts.View
		var imageURL, avatarURL sql.NullString
		var likeUserIDs pq.Int64Array

		err := rows.Scan(&v.ID, &v.Content, &imageURL, &likeUserIDs, &v.CreatedAt,
			&v.Author.ID, &v.Author.Username, &v.Author.FirstName,
			&v.Author.LastName, &avatarURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}

		v.ImageURL = imageURL.String
		v.Author.AvatarURL = avatarURL.String
		v.LikeUserIDs = likeUserIDs
		v.LikeCount = len(likeUserIDs)
		v.Comments = []comments.View{}

		views = append(views, v)
		postIDs = append(postIDs, v.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	if len(views) == 0 {
		return views, nil
	}

	byPost, err := r.commentsForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if resolved, ok := byPost[views[i].ID]; ok {
			views[i].Comments = resolved
		}
	}

	return views, nil
}

// commentsForPosts resolves the comments of a batch of posts in one query,
// author summaries included, in chronological order per post.
func (r *postgresPostRepo) commentsForPosts(ctx context.Context, postIDs []int64) (map[int64][]comments.View, error) {
	query := `
		SELECT c.id, c.post_id, c.content, c.created_at,
			u.id, u.username, u.first_name, u.last_name, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query embedded comments: %w", err)
	}
	defer closeRows(rows)

	byPost := make(map[int64][]comments.View, len(postIDs))
	for rows.Next() {
		var v comments.View
		var avatarURL sql.NullString

		err := rows.Scan(&v.ID, &v.PostID, &v.Content, &v.CreatedAt,
			&v.Author.ID, &v.Author.Username, &v.Author.FirstName,
			&v.Author.LastName, &avatarURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}

		v.Author.AvatarURL = avatarURL.String
		byPost[v.PostID] = append(byPost[v.PostID], v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return byPost, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", slog.String("error", err.Error()))
	}
}
