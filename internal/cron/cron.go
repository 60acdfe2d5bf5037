package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AuditCleaner deletes audit entries older than the retention window.
type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask prunes audit logs once at startup and then every interval
// until ctx is cancelled.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int, interval time.Duration) {
	if retentionDays <= 0 {
		zap.L().Info("audit log cleanup disabled")
		return
	}

	go func() {
		zap.L().Info("starting audit log cleanup task", zap.Int("retention_days", retentionDays))
		runCleanup(cleaner, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runCleanup(cleaner, retentionDays)
			}
		}
	}()
}

func runCleanup(cleaner AuditCleaner, retentionDays int) {
	n, err := cleaner.CleanupOldLogs(retentionDays)
	if err != nil {
		zap.L().Error("audit log cleanup failed", zap.Error(err))
		return
	}
	zap.L().Info("audit log cleanup completed", zap.Int64("deleted", n))
}
