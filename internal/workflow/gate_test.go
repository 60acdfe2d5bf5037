package workflow

import (
	"testing"
	"time"

	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

const (
	courseA = uint(10)
	courseB = uint(11)
	deptA   = uint(1)
	deptB   = uint(2)
)

var (
	tutorA     = Actor{ID: 100, Role: user.RoleTutor, OrgUnitID: courseA}
	tutorB     = Actor{ID: 101, Role: user.RoleTutor, OrgUnitID: courseB}
	hodA       = Actor{ID: 200, Role: user.RoleHOD, OrgUnitID: deptA}
	hodB       = Actor{ID: 201, Role: user.RoleHOD, OrgUnitID: deptB}
	principal  = Actor{ID: 300, Role: user.RolePrincipal}
	admin      = Actor{ID: 1, Role: user.RoleAdmin}
	student    = Actor{ID: 500, Role: user.RoleStudent, OrgUnitID: courseA}
	classmate  = Actor{ID: 501, Role: user.RoleStudent, OrgUnitID: courseA}
	allReviews = []Actor{tutorA, tutorB, hodA, hodB, principal, admin, student}
)

func newSubmission(status submission.Status) *submission.Submission {
	return &submission.Submission{
		ID:           7,
		FormID:       3,
		StudentID:    student.ID,
		CourseID:     courseA,
		DepartmentID: deptA,
		Status:       status,
		Version:      1,
		SubmittedAt:  time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		actor  Actor
		status submission.Status
		permit bool
		reason DenyReason
	}{
		{"tutor of course at tutor stage", tutorA, submission.StatusPendingTutor, true, ""},
		{"tutor of other course", tutorB, submission.StatusPendingTutor, false, ReasonWrongOrgUnit},
		{"hod at tutor stage", hodA, submission.StatusPendingTutor, false, ReasonWrongStage},
		{"principal at tutor stage", principal, submission.StatusPendingTutor, false, ReasonWrongStage},
		{"tutor after tutor stage", tutorA, submission.StatusPendingHOD, false, ReasonWrongStage},
		{"hod of department", hodA, submission.StatusPendingHOD, true, ""},
		{"hod of other department", hodB, submission.StatusPendingHOD, false, ReasonWrongOrgUnit},
		{"principal at principal stage", principal, submission.StatusPendingPrincipal, true, ""},
		{"hod at principal stage", hodA, submission.StatusPendingPrincipal, false, ReasonWrongStage},
		{"admin never owns a stage", admin, submission.StatusPendingTutor, false, ReasonWrongStage},
		{"student never owns a stage", student, submission.StatusPendingTutor, false, ReasonWrongStage},
		{"approved is terminal", principal, submission.StatusApproved, false, ReasonTerminalState},
		{"rejected is terminal", tutorA, submission.StatusRejected, false, ReasonTerminalState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, newSubmission(tt.status))
			assert.Equal(t, tt.permit, d.Permit)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestAuthorize_TutorWithoutCourseIsDenied(t *testing.T) {
	s := newSubmission(submission.StatusPendingTutor)
	s.CourseID = 0

	d := Authorize(Actor{ID: 9, Role: user.RoleTutor}, s)
	assert.False(t, d.Permit)
	assert.Equal(t, ReasonWrongOrgUnit, d.Reason)
}

func TestAuthorize_TerminalDeniesEveryone(t *testing.T) {
	for _, status := range []submission.Status{submission.StatusApproved, submission.StatusRejected} {
		for _, a := range allReviews {
			d := Authorize(a, newSubmission(status))
			assert.Equal(t, ReasonTerminalState, d.Reason, "%s acting on %s", a.Role, status)
		}
	}
}

func TestDecisionErr(t *testing.T) {
	d := Authorize(hodB, newSubmission(submission.StatusPendingHOD))
	err := d.Err(hodB, submission.StatusPendingHOD)

	authErr, ok := err.(*AuthorizationError)
	if assert.True(t, ok) {
		assert.Equal(t, ReasonWrongOrgUnit, authErr.Reason)
		assert.Equal(t, submission.StageHOD, authErr.Stage)
		assert.Equal(t, user.RoleHOD, authErr.RequiredRole)
		assert.Equal(t, user.RoleHOD, authErr.ActorRole)
	}

	assert.NoError(t, Authorize(hodA, newSubmission(submission.StatusPendingHOD)).Err(hodA, submission.StatusPendingHOD))
}

func TestCanView(t *testing.T) {
	fresh := newSubmission(submission.StatusPendingTutor)
	assert.True(t, CanView(student, fresh))
	assert.False(t, CanView(classmate, fresh))
	assert.True(t, CanView(admin, fresh))
	assert.True(t, CanView(tutorA, fresh))
	assert.False(t, CanView(tutorB, fresh))
	assert.False(t, CanView(hodA, fresh), "hod stage not reached yet")
	assert.False(t, CanView(principal, fresh))

	atHOD := newSubmission(submission.StatusPendingHOD)
	assert.NoError(t, atHOD.RecordReview(submission.StageTutor, submission.Review{ReviewerID: tutorA.ID, ReviewedAt: time.Now()}))
	assert.True(t, CanView(hodA, atHOD))
	assert.False(t, CanView(hodB, atHOD))
	assert.False(t, CanView(principal, atHOD))

	rejectedByTutor := newSubmission(submission.StatusRejected)
	assert.NoError(t, rejectedByTutor.RecordReview(submission.StageTutor, submission.Review{ReviewerID: tutorA.ID, ReviewedAt: time.Now()}))
	assert.True(t, CanView(tutorA, rejectedByTutor))
	assert.False(t, CanView(hodA, rejectedByTutor), "hod never held a stage")

	// a reviewer moved to another course keeps access to what they reviewed
	moved := Actor{ID: tutorA.ID, Role: user.RoleTutor, OrgUnitID: courseB}
	assert.True(t, CanView(moved, rejectedByTutor))
}
