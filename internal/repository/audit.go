package repository

import (
	"strconv"
	"time"

	"github.com/linskybing/request-portal/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditFilter narrows an audit query. Nil fields match everything.
type AuditFilter struct {
	UserID       *uint
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

func (f AuditFilter) apply(q *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.ResourceType != nil {
		q = q.Where("resource_type = ?", *f.ResourceType)
	}
	if f.ResourceID != nil {
		q = q.Where("resource_id = ?", *f.ResourceID)
	}
	if f.Action != nil {
		q = q.Where("action = ?", *f.Action)
	}
	if f.StartTime != nil {
		q = q.Where("created_at >= ?", *f.StartTime)
	}
	if f.EndTime != nil {
		q = q.Where("created_at <= ?", *f.EndTime)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}

type AuditRepo interface {
	ListAuditLogs(filter AuditFilter) ([]audit.AuditLog, error)
	// ResourceHistory returns every entry for one resource, oldest first.
	ResourceHistory(resourceType string, resourceID uint) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	PurgeBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) ListAuditLogs(filter AuditFilter) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := filter.apply(r.db.Model(&audit.AuditLog{})).
		Order("created_at DESC").Order("id DESC").
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) ResourceHistory(resourceType string, resourceID uint) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := r.db.
		Where("resource_type = ? AND resource_id = ?", resourceType, strconv.FormatUint(uint64(resourceID), 10)).
		Order("created_at ASC").Order("id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) PurgeBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
