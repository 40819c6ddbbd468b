package workers

import (
	"context"
	"database/sql"
	"time"

	"github.com/brandwave/social-backend/internal/logs"
)

// NotificationCleanupWorker hard-deletes read notifications older than the
// configured retention period. Unread notifications are never touched.
type NotificationCleanupWorker struct {
	DB             *sql.DB
	RetentionHours int           // how long to keep read notifications (default: 24)
	CheckInterval  time.Duration // how often to run cleanup (default: 1 hour)
}

// Start begins the cleanup loop and blocks until ctx is cancelled.
func (w *NotificationCleanupWorker) Start(ctx context.Context) {
	if w.RetentionHours <= 0 {
		w.RetentionHours = 24
	}
	if w.CheckInterval <= 0 {
		w.CheckInterval = time.Hour
	}

	ticker := time.NewTicker(w.CheckInterval)
	defer ticker.Stop()

	logs.Logger.Infof("[NotificationCleanup] started (retention=%dh, interval=%s)", w.RetentionHours, w.CheckInterval)

	for {
		select {
		case <-ctx.Done():
			logs.Logger.Infof("[NotificationCleanup] stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *NotificationCleanupWorker) cleanup(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-time.Duration(w.RetentionHours) * time.Hour)

	result, err := w.DB.ExecContext(ctx, `
		DELETE FROM public.notifications
		WHERE (doc ->> 'read')::boolean
		AND (doc ->> 'createdAt')::timestamptz < $1
	`, cutoff)
	if err != nil {
		logs.Logger.Errorf("[NotificationCleanup] error: %v", err)
		return
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		logs.Logger.Errorf("[NotificationCleanup] error getting rows affected: %v", err)
		return
	}
	if deleted > 0 {
		logs.Logger.Infof("[NotificationCleanup] deleted %d old read notifications", deleted)
	}
}
