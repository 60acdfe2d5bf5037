package repository

import (
	"github.com/linskybing/request-portal/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(s *submission.Submission) error
	GetSubmissionByID(id uint) (submission.Submission, error)
	ListSubmissions(filter submission.ListFilter) ([]submission.Submission, error)
	CountByForm(formID uint) (int64, error)
	CompareAndSwap(id, expectedVersion uint, next *submission.Submission) (bool, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) CreateSubmission(s *submission.Submission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) GetSubmissionByID(id uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBSubmissionRepo) ListSubmissions(filter submission.ListFilter) ([]submission.Submission, error) {
	var subs []submission.Submission
	query := r.db.Model(&submission.Submission{})

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.FormID != nil {
		query = query.Where("form_id = ?", *filter.FormID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}

	query = query.Order("submitted_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	err := query.Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) CountByForm(formID uint) (int64, error) {
	var n int64
	err := r.db.Model(&submission.Submission{}).Where("form_id = ?", formID).Count(&n).Error
	return n, err
}

// CompareAndSwap persists next's status and review columns only if the stored
// version still equals expectedVersion, bumping the version in the same
// statement. It returns false when another writer got there first. On success
// next.Version holds the new version.
func (r *DBSubmissionRepo) CompareAndSwap(id, expectedVersion uint, next *submission.Submission) (bool, error) {
	changes := map[string]any{
		"status":  next.Status,
		"version": gorm.Expr("version + 1"),

		"tutor_reviewer_id": next.TutorReviewerID,
		"tutor_reviewed_at": next.TutorReviewedAt,
		"tutor_comment":     next.TutorComment,

		"hod_reviewer_id": next.HODReviewerID,
		"hod_reviewed_at": next.HODReviewedAt,
		"hod_comment":     next.HODComment,

		"principal_reviewer_id": next.PrincipalReviewerID,
		"principal_reviewed_at": next.PrincipalReviewedAt,
		"principal_comment":     next.PrincipalComment,
	}

	res := r.db.Model(&submission.Submission{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	next.ID = id
	next.Version = expectedVersion + 1
	return true, nil
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}
