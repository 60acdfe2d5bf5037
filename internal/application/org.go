package application

import (
	"errors"

	"github.com/linskybing/request-portal/internal/domain/org"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"gorm.io/gorm"
)

type OrgService struct {
	Repos *repository.Repos
}

func NewOrgService(repos *repository.Repos) *OrgService {
	return &OrgService{Repos: repos}
}

func (s *OrgService) CreateDepartment(input org.CreateDepartmentDTO) (org.Department, error) {
	d := org.Department{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.Repos.Org.CreateDepartment(&d); err != nil {
		return org.Department{}, err
	}
	return d, nil
}

// CreateCourse adds a course to a department. HODs may only add courses to
// their own department.
func (s *OrgService) CreateCourse(actor workflow.Actor, input org.CreateCourseDTO) (org.Course, error) {
	if actor.Role == user.RoleHOD && actor.OrgUnitID != input.DepartmentID {
		return org.Course{}, ErrForbidden
	}
	if _, err := s.GetDepartment(input.DepartmentID); err != nil {
		return org.Course{}, err
	}

	c := org.Course{
		Name:         input.Name,
		Code:         input.Code,
		DepartmentID: input.DepartmentID,
		Description:  input.Description,
		IsActive:     true,
	}
	if err := s.Repos.Org.CreateCourse(&c); err != nil {
		return org.Course{}, err
	}
	return c, nil
}

func (s *OrgService) GetDepartment(id uint) (org.Department, error) {
	d, err := s.Repos.Org.GetDepartmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return org.Department{}, ErrDepartmentNotFound
		}
		return org.Department{}, err
	}
	return d, nil
}

func (s *OrgService) GetCourse(id uint) (org.Course, error) {
	c, err := s.Repos.Org.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return org.Course{}, ErrCourseNotFound
		}
		return org.Course{}, err
	}
	return c, nil
}

func (s *OrgService) UpdateDepartment(id uint, input org.UpdateDepartmentDTO) (org.Department, error) {
	d, err := s.GetDepartment(id)
	if err != nil {
		return org.Department{}, err
	}

	changes := map[string]any{}
	if input.Name != nil {
		d.Name = *input.Name
		changes["name"] = d.Name
	}
	if input.Code != nil {
		d.Code = *input.Code
		changes["code"] = d.Code
	}
	if input.Description != nil {
		d.Description = *input.Description
		changes["description"] = d.Description
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
		changes["is_active"] = d.IsActive
	}
	if err := s.Repos.Org.UpdateDepartment(id, changes); err != nil {
		return org.Department{}, err
	}
	return d, nil
}

// UpdateCourse edits a course in place. HODs may only edit courses of their
// own department.
func (s *OrgService) UpdateCourse(actor workflow.Actor, id uint, input org.UpdateCourseDTO) (org.Course, error) {
	c, err := s.GetCourse(id)
	if err != nil {
		return org.Course{}, err
	}
	if actor.Role == user.RoleHOD && actor.OrgUnitID != c.DepartmentID {
		return org.Course{}, ErrForbidden
	}

	changes := map[string]any{}
	if input.Name != nil {
		c.Name = *input.Name
		changes["name"] = c.Name
	}
	if input.Code != nil {
		c.Code = *input.Code
		changes["code"] = c.Code
	}
	if input.Description != nil {
		c.Description = *input.Description
		changes["description"] = c.Description
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
		changes["is_active"] = c.IsActive
	}
	if err := s.Repos.Org.UpdateCourse(id, changes); err != nil {
		return org.Course{}, err
	}
	return c, nil
}

func (s *OrgService) ListDepartments() ([]org.Department, error) {
	return s.Repos.Org.ListDepartments()
}

func (s *OrgService) ListCourses(departmentID *uint) ([]org.Course, error) {
	return s.Repos.Org.ListCourses(departmentID)
}
