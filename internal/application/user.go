package application

import (
	"errors"
	"time"

	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserInactive        = errors.New("user account is disabled")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPrincipalExists     = errors.New("an active principal already exists")

	ErrRegistrationPending   = errors.New("registration is waiting for approval")
	ErrRegistrationRejected  = errors.New("registration was rejected")
	ErrRegistrationDecided   = errors.New("registration has already been decided")
	ErrInvalidApprovalFilter = errors.New("invalid approval status filter")
)

type UserService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
		now:   time.Now,
	}
}

// CanManageUser applies the account hierarchy: admins manage everyone, a
// principal manages HODs, tutors and students, an HOD manages the tutors and
// students of its own department. Nobody manages its own account this way.
func CanManageUser(actor workflow.Actor, target *user.User) bool {
	if actor.ID == target.ID {
		return false
	}
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RolePrincipal:
		return target.Role == user.RoleHOD || target.Role == user.RoleTutor || target.Role == user.RoleStudent
	case user.RoleHOD:
		return (target.Role == user.RoleTutor || target.Role == user.RoleStudent) &&
			target.DepartmentIs(actor.DepartmentID)
	}
	return false
}

func (s *UserService) TokenTTL() time.Duration {
	return time.Duration(config.TokenTTLHours) * time.Hour
}

func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrUserInactive
	}
	if usr.Role == user.RoleStudent {
		switch usr.ApprovalStatus {
		case user.ApprovalPending:
			return user.User{}, "", ErrRegistrationPending
		case user.ApprovalRejected:
			return user.User{}, "", ErrRegistrationRejected
		}
	}

	token, err := middleware.GenerateToken(usr, s.TokenTTL())
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// CreateUser registers an account after checking the role's org-unit rules,
// that the course sits in the given department and that at most one active
// principal exists.
func (s *UserService) CreateUser(input user.CreateUserInput) (user.User, error) {
	if err := s.ensureUsernameFree(input.Username); err != nil {
		return user.User{}, err
	}

	usr := user.User{
		Username:       input.Username,
		Name:           input.Name,
		Email:          input.Email,
		Role:           input.Role,
		DepartmentID:   input.DepartmentID,
		CourseID:       input.CourseID,
		IsActive:       true,
		ApprovalStatus: user.ApprovalApproved,
	}
	if err := usr.Validate(); err != nil {
		return user.User{}, err
	}

	if usr.Role == user.RolePrincipal {
		if err := s.ensureNoActivePrincipal(); err != nil {
			return user.User{}, err
		}
	}
	if err := s.checkOrgUnits(usr.DepartmentID, usr.CourseID); err != nil {
		return user.User{}, err
	}

	if err := s.store(&usr, input.Password); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// RegisterStudent creates a student account that cannot log in until an HOD
// of its department, the principal or an admin approves it.
func (s *UserService) RegisterStudent(input user.RegisterStudentInput) (user.User, error) {
	if err := s.ensureUsernameFree(input.Username); err != nil {
		return user.User{}, err
	}

	deptID, courseID := input.DepartmentID, input.CourseID
	usr := user.User{
		Username:       input.Username,
		Name:           input.Name,
		Email:          input.Email,
		Role:           user.RoleStudent,
		DepartmentID:   &deptID,
		CourseID:       &courseID,
		IsActive:       true,
		ApprovalStatus: user.ApprovalPending,
	}
	if err := s.checkOrgUnits(usr.DepartmentID, usr.CourseID); err != nil {
		return user.User{}, err
	}

	if err := s.store(&usr, input.Password); err != nil {
		return user.User{}, err
	}
	zap.L().Info("student registered",
		zap.Uint("user_id", usr.ID),
		zap.Uint("department_id", deptID),
		zap.Uint("course_id", courseID))
	return usr, nil
}

func (s *UserService) ensureUsernameFree(username string) error {
	_, err := s.Repos.User.GetUserByUsername(username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *UserService) ensureNoActivePrincipal() error {
	n, err := s.Repos.User.CountActivePrincipals()
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrPrincipalExists
	}
	return nil
}

func (s *UserService) store(usr *user.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)
	return s.Repos.User.CreateUser(usr)
}

func (s *UserService) checkOrgUnits(departmentID, courseID *uint) error {
	if departmentID != nil {
		if _, err := s.Repos.Org.GetDepartmentByID(*departmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
	}
	if courseID != nil {
		c, err := s.Repos.Org.GetCourseByID(*courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		if departmentID == nil || c.DepartmentID != *departmentID {
			return ErrCourseDepartmentMismatch
		}
	}
	return nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) ListUsers(role *user.Role) ([]user.User, error) {
	return s.Repos.User.ListUsers(repository.UserListFilter{Role: role})
}

// ListStudents returns the students with the given approval status that the
// actor may see: tutors their course's approved students, HODs their
// department, principals and admins everyone.
func (s *UserService) ListStudents(actor workflow.Actor, status user.ApprovalStatus) ([]user.User, error) {
	if !status.IsValid() {
		return nil, ErrInvalidApprovalFilter
	}
	role := user.RoleStudent
	filter := repository.UserListFilter{Role: &role, ApprovalStatus: &status}
	switch actor.Role {
	case user.RoleTutor:
		if status != user.ApprovalApproved {
			return nil, ErrForbidden
		}
		course := actor.OrgUnitID
		filter.CourseID = &course
	case user.RoleHOD:
		dept := actor.DepartmentID
		filter.DepartmentID = &dept
	case user.RolePrincipal, user.RoleAdmin:
	default:
		return nil, ErrForbidden
	}
	return s.Repos.User.ListUsers(filter)
}

// DecideRegistration approves or rejects a pending student. A registration
// is decided once; a second decision fails with ErrRegistrationDecided.
func (s *UserService) DecideRegistration(actor workflow.Actor, id uint, approve bool) (user.User, error) {
	usr, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}
	if usr.Role != user.RoleStudent {
		return user.User{}, ErrUserNotFound
	}
	switch actor.Role {
	case user.RoleHOD:
		if !usr.DepartmentIs(actor.DepartmentID) {
			return user.User{}, ErrForbidden
		}
	case user.RolePrincipal, user.RoleAdmin:
	default:
		return user.User{}, ErrForbidden
	}

	status := user.ApprovalRejected
	if approve {
		status = user.ApprovalApproved
	}
	at := s.now().UTC()
	ok, err := s.Repos.User.DecidePending(id, status, at)
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, ErrRegistrationDecided
	}

	usr.ApprovalStatus = status
	if approve {
		usr.ApprovedAt = &at
	}
	zap.L().Info("registration decided",
		zap.Uint("user_id", usr.ID),
		zap.String("status", string(status)),
		zap.Uint("decided_by", actor.ID))
	return usr, nil
}

// UpdateUser applies a partial update to an account the actor manages. The
// result must still satisfy the role's org-unit rules, and an HOD cannot
// move anyone out of its department.
func (s *UserService) UpdateUser(actor workflow.Actor, id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}
	if !CanManageUser(actor, &usr) {
		return user.User{}, ErrForbidden
	}

	wasActive := usr.IsActive
	changes := map[string]any{}
	if input.Name != nil {
		usr.Name = *input.Name
		changes["name"] = usr.Name
	}
	if input.Email != nil {
		usr.Email = input.Email
		changes["email"] = *input.Email
	}
	if input.DepartmentID != nil {
		usr.DepartmentID = input.DepartmentID
		changes["department_id"] = *input.DepartmentID
	}
	if input.CourseID != nil {
		usr.CourseID = input.CourseID
		changes["course_id"] = *input.CourseID
	}
	if input.IsActive != nil {
		usr.IsActive = *input.IsActive
		changes["is_active"] = usr.IsActive
	}

	if err := usr.Validate(); err != nil {
		return user.User{}, err
	}
	if actor.Role == user.RoleHOD && !usr.DepartmentIs(actor.DepartmentID) {
		return user.User{}, ErrForbidden
	}
	if input.DepartmentID != nil || input.CourseID != nil {
		if err := s.checkOrgUnits(usr.DepartmentID, usr.CourseID); err != nil {
			return user.User{}, err
		}
	}
	if usr.Role == user.RolePrincipal && usr.IsActive && !wasActive {
		if err := s.ensureNoActivePrincipal(); err != nil {
			return user.User{}, err
		}
	}

	if err := s.Repos.User.UpdateUser(id, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

// DeactivateUser blocks further logins. Tokens already issued stay valid
// until they expire.
func (s *UserService) DeactivateUser(actor workflow.Actor, id uint) (user.User, error) {
	inactive := false
	return s.UpdateUser(actor, id, user.UpdateUserInput{IsActive: &inactive})
}
