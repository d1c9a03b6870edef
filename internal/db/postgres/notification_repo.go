package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.NotificationRepository {
	return &postgresNotificationRepo{db: db}
}

// Create inserts a notification record. The sender <> recipient check is a
// database-level backstop behind the emitter's own suppression.
func (r *postgresNotificationRepo) Create(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	query := `
		INSERT INTO notifications (sender_id, recipient_id, type, post_id, comment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	var commentID sql.NullInt64
	if n.CommentID != nil {
		commentID = sql.NullInt64{Int64: *n.CommentID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		n.SenderID, n.RecipientID, n.Type, n.PostID, commentID).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}
