package notifications

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_notifications_emitted_total",
		Help: "Notifications written, by type.",
	}, []string{"type"})

	failedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_notifications_failed_total",
		Help: "Notification writes that failed and were dropped.",
	})

	suppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_notifications_suppressed_total",
		Help: "Self-notifications suppressed before write.",
	})
)

type emitter struct {
	repo   NotificationRepository
	logger *slog.Logger
}

// NewEmitter creates a notification emitter backed by repo
func NewEmitter(repo NotificationRepository, logger *slog.Logger) Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &emitter{repo: repo, logger: logger}
}

// Emit writes one notification record, unless sender and recipient are the
// same user. Failures are logged and counted but never returned: the like or
// comment that triggered the emit has already committed and must stand.
func (e *emitter) Emit(ctx context.Context, senderID, recipientID int64, notifType string, postID int64, commentID *int64) {
	if senderID == recipientID {
		suppressedTotal.Inc()
		return
	}

	n := &Notification{
		SenderID:    senderID,
		RecipientID: recipientID,
		Type:        notifType,
		PostID:      postID,
		CommentID:   commentID,
	}

	if _, err := e.repo.Create(ctx, n); err != nil {
		failedTotal.Inc()
		e.logger.Error("failed to emit notification",
			"error", err,
			"type", notifType,
			"sender", senderID,
			"recipient", recipientID,
			"post", postID)
		return
	}

	emittedTotal.WithLabelValues(notifType).Inc()
	e.logger.Debug("notification emitted",
		"type", notifType,
		"sender", senderID,
		"recipient", recipientID,
		"post", postID)
}
