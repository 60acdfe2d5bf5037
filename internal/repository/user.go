package repository

import (
	"time"

	"github.com/linskybing/request-portal/internal/domain/user"
	"gorm.io/gorm"
)

// UserListFilter narrows user listings; nil fields do not filter.
type UserListFilter struct {
	Role           *user.Role
	ApprovalStatus *user.ApprovalStatus
	DepartmentID   *uint
	CourseID       *uint
}

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsers(filter UserListFilter) ([]user.User, error)
	CreateUser(u *user.User) error
	UpdateUser(id uint, changes map[string]any) error
	DecidePending(id uint, status user.ApprovalStatus, at time.Time) (bool, error)
	CountActivePrincipals() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsers(filter UserListFilter) ([]user.User, error) {
	var users []user.User
	query := r.db.Model(&user.User{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.ApprovalStatus != nil {
		query = query.Where("approval_status = ?", *filter.ApprovalStatus)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	err := query.Order("id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) UpdateUser(id uint, changes map[string]any) error {
	return updateColumns(r.db.Model(&user.User{}), id, changes)
}

// DecidePending moves a pending registration to status. It reports false
// when the row was no longer pending, so only one decision ever lands.
func (r *DBUserRepo) DecidePending(id uint, status user.ApprovalStatus, at time.Time) (bool, error) {
	changes := map[string]any{"approval_status": status}
	if status == user.ApprovalApproved {
		changes["approved_at"] = at
	}
	res := r.db.Model(&user.User{}).
		Where("id = ? AND approval_status = ?", id, user.ApprovalPending).
		Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBUserRepo) CountActivePrincipals() (int64, error) {
	var n int64
	err := r.db.Model(&user.User{}).
		Where("role = ? AND is_active = ?", user.RolePrincipal, true).
		Count(&n).Error
	return n, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
