package workflow

import (
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
)

// Actor is an authenticated caller. OrgUnitID is the course for tutors and
// students, the department for HODs and zero for principals and admins.
// DepartmentID is the department the actor belongs to, zero for principals
// and admins; it only drives form visibility, never review scope.
type Actor struct {
	ID           uint
	Role         user.Role
	OrgUnitID    uint
	DepartmentID uint
}

// ActorFor builds the actor for a stored user.
func ActorFor(u user.User) Actor {
	a := Actor{ID: u.ID, Role: u.Role, OrgUnitID: u.OrgUnitID()}
	if u.DepartmentID != nil {
		a.DepartmentID = *u.DepartmentID
	}
	return a
}

// DenyReason explains why the gate refused an action.
type DenyReason string

const (
	ReasonWrongStage    DenyReason = "wrong_stage"
	ReasonWrongOrgUnit  DenyReason = "wrong_org_unit"
	ReasonTerminalState DenyReason = "terminal_state"
)

// Decision is the gate's verdict for one actor against one submission state.
type Decision struct {
	Permit       bool
	Reason       DenyReason
	Stage        submission.Stage
	RequiredRole user.Role
}

// Err converts a deny into an *AuthorizationError; nil when permitted.
func (d Decision) Err(actor Actor, status submission.Status) error {
	if d.Permit {
		return nil
	}
	return &AuthorizationError{
		Reason:       d.Reason,
		Status:       status,
		Stage:        d.Stage,
		ActorRole:    actor.Role,
		RequiredRole: d.RequiredRole,
	}
}

// StageRole is the role that owns a review stage.
func StageRole(stage submission.Stage) user.Role {
	switch stage {
	case submission.StageTutor:
		return user.RoleTutor
	case submission.StageHOD:
		return user.RoleHOD
	case submission.StagePrincipal:
		return user.RolePrincipal
	}
	return ""
}

// Authorize decides whether actor may review s in its current state.
// Terminal submissions are refused for everyone before any role check.
func Authorize(actor Actor, s *submission.Submission) Decision {
	if s.Status.IsTerminal() {
		return Decision{Reason: ReasonTerminalState}
	}
	stage, ok := s.Status.Stage()
	if !ok {
		return Decision{Reason: ReasonWrongStage}
	}
	d := Decision{Stage: stage, RequiredRole: StageRole(stage)}
	if actor.Role != d.RequiredRole {
		d.Reason = ReasonWrongStage
		return d
	}
	if !ownsOrgUnit(actor, stage, s) {
		d.Reason = ReasonWrongOrgUnit
		return d
	}
	d.Permit = true
	return d
}

func ownsOrgUnit(actor Actor, stage submission.Stage, s *submission.Submission) bool {
	switch stage {
	case submission.StageTutor:
		return actor.OrgUnitID != 0 && actor.OrgUnitID == s.CourseID
	case submission.StageHOD:
		return actor.OrgUnitID != 0 && actor.OrgUnitID == s.DepartmentID
	case submission.StagePrincipal:
		return true
	}
	return false
}

// CanView decides read access: the owning student, admins, and any reviewer
// within scope whose stage has been reached on the submission.
func CanView(actor Actor, s *submission.Submission) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStudent:
		return actor.ID == s.StudentID
	}
	for _, stage := range submission.Stages {
		if StageRole(stage) != actor.Role || !s.Reached(stage) {
			continue
		}
		if ownsOrgUnit(actor, stage, s) {
			return true
		}
	}
	return s.ReviewedBy(actor.ID)
}
