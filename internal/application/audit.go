package application

import (
	"errors"
	"time"

	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"gorm.io/gorm"
)

type AuditService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos, now: time.Now}
}

func (s *AuditService) QueryAuditLogs(filter repository.AuditFilter) ([]audit.AuditLog, error) {
	return s.Repos.Audit.ListAuditLogs(filter)
}

// CleanupOldLogs drops entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.PurgeBefore(s.now().AddDate(0, 0, -days))
}

// SubmissionHistory lists what happened to a submission, oldest first, to
// anyone allowed to see the submission itself.
func (s *AuditService) SubmissionHistory(actor workflow.Actor, id uint) ([]audit.HistoryEntry, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	if !workflow.CanView(actor, &sub) {
		return nil, ErrForbidden
	}

	logs, err := s.Repos.Audit.ResourceHistory(audit.ResourceSubmission, id)
	if err != nil {
		return nil, err
	}
	history := make([]audit.HistoryEntry, 0, len(logs))
	for _, l := range logs {
		history = append(history, audit.HistoryEntryFrom(l))
	}
	return history, nil
}
