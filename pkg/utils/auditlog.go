package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/repository"
	"go.uber.org/zap"
)

// RecordAudit stores e in the background on behalf of the caller. Request
// data is read before the goroutine starts since gin recycles the context.
var RecordAudit = func(c *gin.Context, repo repository.AuditRepo, e audit.Event) {
	if e.ActorID == 0 {
		e.ActorID, _ = GetUserIDFromContext(c)
	}
	entry, err := e.Entry()
	if err != nil {
		zap.L().Warn("audit snapshot dropped", zap.String("action", e.Action), zap.Error(err))
	}
	entry.IPAddress = c.ClientIP()
	entry.UserAgent = c.GetHeader("User-Agent")

	go func() {
		if err := repo.CreateAuditLog(entry); err != nil {
			zap.L().Error("audit log write failed",
				zap.String("action", entry.Action),
				zap.String("resource_type", entry.ResourceType),
				zap.String("resource_id", entry.ResourceID),
				zap.Error(err))
		}
	}()
}

// SubmissionEvent builds the event for a submission state change. The
// snapshot carries only what the history timeline needs.
func SubmissionEvent(action string, id uint, status string, version uint, comment string) audit.Event {
	return audit.Event{
		Action:       action,
		ResourceType: audit.ResourceSubmission,
		ResourceID:   id,
		After:        audit.StatusChange{Status: status, Version: version, Comment: comment},
		Description:  "submission " + status,
	}
}
