package notifications

import "context"

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) (*Notification, error)
}

// Emitter creates notifications as a fan-out side effect of likes and
// comments. Emission is best-effort relative to the triggering mutation:
// a failed emit is logged and counted, never surfaced to the caller.
type Emitter interface {
	Emit(ctx context.Context, senderID, recipientID int64, notifType string, postID int64, commentID *int64)
}
