package application

import (
	"errors"

	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"gorm.io/gorm"
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

// CanManageForm applies the management hierarchy: admins manage every form,
// a principal manages the forms it created and every HOD-created form, an
// HOD manages only its own forms.
func CanManageForm(actor workflow.Actor, d *form.Definition) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RolePrincipal:
		if d.CreatedByRole == user.RoleHOD {
			return true
		}
		return d.CreatedByRole == user.RolePrincipal && d.CreatedByID == actor.ID
	case user.RoleHOD:
		return d.CreatedByRole == user.RoleHOD && d.CreatedByID == actor.ID
	}
	return false
}

func canCreateForms(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RolePrincipal || role == user.RoleHOD
}

// seesAllForms reports whether the actor is not limited to its department's forms.
func seesAllForms(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RolePrincipal
}

func (s *FormService) CreateForm(actor workflow.Actor, input form.CreateFormDTO) (form.Definition, error) {
	if !canCreateForms(actor.Role) {
		return form.Definition{}, ErrForbidden
	}

	deptID := input.DepartmentID
	if actor.Role == user.RoleHOD {
		if deptID != nil && *deptID != actor.OrgUnitID {
			return form.Definition{}, ErrForbidden
		}
		own := actor.OrgUnitID
		deptID = &own
	} else if deptID != nil {
		if _, err := s.Repos.Org.GetDepartmentByID(*deptID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return form.Definition{}, ErrDepartmentNotFound
			}
			return form.Definition{}, err
		}
	}

	d := form.Definition{
		Title:         input.Title,
		Description:   input.Description,
		DepartmentID:  deptID,
		IsActive:      true,
		CreatedByRole: actor.Role,
		CreatedByID:   actor.ID,
		Fields:        form.BuildFields(input.Fields),
	}
	if err := d.Validate(); err != nil {
		return form.Definition{}, err
	}
	if err := s.Repos.Form.CreateForm(&d); err != nil {
		return form.Definition{}, err
	}
	return d, nil
}

func findForm(repos *repository.Repos, id uint) (form.Definition, error) {
	d, err := repos.Form.GetFormByID(id)
	if err != nil {
		return form.Definition{}, formLookupError(err)
	}
	return d, nil
}

func formLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	return err
}

// GetForm returns a form the actor may see. Forms outside the actor's reach
// are reported as not found.
func (s *FormService) GetForm(actor workflow.Actor, id uint) (form.Definition, error) {
	d, err := findForm(s.Repos, id)
	if err != nil {
		return form.Definition{}, err
	}
	if seesAllForms(actor.Role) || CanManageForm(actor, &d) {
		return d, nil
	}
	if !d.IsActive || !d.AvailableTo(actor.DepartmentID) {
		return form.Definition{}, ErrFormNotFound
	}
	return d, nil
}

// ListForms returns the forms visible to the actor. Only admins, principals
// and HODs may ask for inactive forms.
func (s *FormService) ListForms(actor workflow.Actor, includeInactive bool) ([]form.Definition, error) {
	filter := repository.FormListFilter{}
	if !seesAllForms(actor.Role) {
		dept := actor.DepartmentID
		filter.VisibleToDepartment = &dept
	}
	if includeInactive && canCreateForms(actor.Role) {
		filter.IncludeInactive = true
	}
	return s.Repos.Form.ListForms(filter)
}

// UpdateForm applies a partial update in one transaction. The form row is
// locked first, so the submission count and the field swap see the same
// state; CreateSubmission takes a share lock on the same row.
func (s *FormService) UpdateForm(actor workflow.Actor, id uint, input form.UpdateFormDTO) (form.Definition, error) {
	var d form.Definition
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.LockForm(id, repository.LockForUpdate); err != nil {
			return formLookupError(err)
		}
		var err error
		if d, err = findForm(tx, id); err != nil {
			return err
		}
		if !CanManageForm(actor, &d) {
			return ErrForbidden
		}

		changes := map[string]any{}
		if input.Title != nil {
			d.Title = *input.Title
			changes["title"] = d.Title
		}
		if input.Description != nil {
			d.Description = *input.Description
			changes["description"] = d.Description
		}
		if input.IsActive != nil {
			d.IsActive = *input.IsActive
			changes["is_active"] = d.IsActive
		}
		if input.Fields != nil {
			n, err := tx.Submission.CountByForm(id)
			if err != nil {
				return err
			}
			if n > 0 {
				return ErrFormHasSubmissions
			}
			d.Fields = form.BuildFields(*input.Fields)
		}
		if err := d.Validate(); err != nil {
			return err
		}

		if err := tx.Form.UpdateForm(id, changes); err != nil {
			return err
		}
		if input.Fields != nil {
			return tx.Form.ReplaceFields(id, d.Fields)
		}
		return nil
	})
	if err != nil {
		return form.Definition{}, err
	}
	return d, nil
}

// SetFormActive deactivates or reactivates a form. Submissions already in
// flight are unaffected.
func (s *FormService) SetFormActive(actor workflow.Actor, id uint, active bool) (form.Definition, error) {
	return s.UpdateForm(actor, id, form.UpdateFormDTO{IsActive: &active})
}
