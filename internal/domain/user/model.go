package user

import (
	"errors"
	"time"
)

// Role is the portal role carried in a user's token.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTutor     Role = "tutor"
	RoleHOD       Role = "hod"
	RolePrincipal Role = "principal"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleHOD, RolePrincipal, RoleAdmin:
		return true
	}
	return false
}

// IsReviewer reports whether the role owns one of the review stages.
func (r Role) IsReviewer() bool {
	return r == RoleTutor || r == RoleHOD || r == RolePrincipal
}

// ApprovalStatus tracks a self-registered student through the approval queue.
// Accounts created by an admin start out approved.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

var (
	ErrInvalidRole            = errors.New("invalid role")
	ErrPrincipalHasDepartment = errors.New("principal should not be assigned to a department")
	ErrDepartmentRequired     = errors.New("department is required for this role")
	ErrCourseRequired         = errors.New("course is required for this role")
)

type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        *string   `gorm:"size:255" json:"email,omitempty"`
	Role         Role      `gorm:"size:20;not null;index" json:"role"`
	DepartmentID *uint     `gorm:"column:department_id;index" json:"department_id"`
	CourseID     *uint     `gorm:"column:course_id;index" json:"course_id"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	ApprovalStatus ApprovalStatus `gorm:"size:20;not null;default:'approved';index" json:"approval_status"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at" json:"approved_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Validate enforces the org-unit assignment each role needs.
func (u *User) Validate() error {
	switch u.Role {
	case RolePrincipal:
		if u.DepartmentID != nil || u.CourseID != nil {
			return ErrPrincipalHasDepartment
		}
	case RoleHOD:
		if u.DepartmentID == nil {
			return ErrDepartmentRequired
		}
	case RoleTutor, RoleStudent:
		if u.DepartmentID == nil {
			return ErrDepartmentRequired
		}
		if u.CourseID == nil {
			return ErrCourseRequired
		}
	case RoleAdmin:
	default:
		return ErrInvalidRole
	}
	return nil
}

// OrgUnitID is the scope a reviewer acts within: course for tutors,
// department for HODs, none for principals and admins.
func (u *User) OrgUnitID() uint {
	switch u.Role {
	case RoleTutor, RoleStudent:
		if u.CourseID != nil {
			return *u.CourseID
		}
	case RoleHOD:
		if u.DepartmentID != nil {
			return *u.DepartmentID
		}
	}
	return 0
}

// DepartmentIs reports whether the user belongs to the given department.
func (u *User) DepartmentIs(id uint) bool {
	return u.DepartmentID != nil && *u.DepartmentID == id
}
