package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngineWithClock(func() time.Time { return fixedNow })
}

func requireAuthErr(t *testing.T, err error, reason DenyReason) {
	t.Helper()
	var authErr *AuthorizationError
	require.True(t, errors.As(err, &authErr), "expected AuthorizationError, got %v", err)
	assert.Equal(t, reason, authErr.Reason)
}

func TestReview_FullApprovalChain(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)

	visited := []submission.Status{s.Status}
	for _, a := range []Actor{tutorA, hodA, principal} {
		next, err := e.Review(s, a, ActionApprove, "ok")
		require.NoError(t, err)
		s = next
		visited = append(visited, s.Status)
	}

	assert.Equal(t, []submission.Status{
		submission.StatusPendingTutor,
		submission.StatusPendingHOD,
		submission.StatusPendingPrincipal,
		submission.StatusApproved,
	}, visited)

	for _, stage := range submission.Stages {
		r := s.ReviewFor(stage)
		require.NotNil(t, r, "stage %s", stage)
		assert.Equal(t, fixedNow, r.ReviewedAt)
		assert.Equal(t, "ok", r.Comment)
	}
	assert.Equal(t, tutorA.ID, *s.TutorReviewerID)
	assert.Equal(t, hodA.ID, *s.HODReviewerID)
	assert.Equal(t, principal.ID, *s.PrincipalReviewerID)
}

func TestReview_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)

	next, err := e.Review(s, tutorA, ActionApprove, "fine")
	require.NoError(t, err)

	assert.Equal(t, submission.StatusPendingTutor, s.Status)
	assert.Nil(t, s.ReviewFor(submission.StageTutor))
	assert.Equal(t, submission.StatusPendingHOD, next.Status)
	assert.Equal(t, s.Version, next.Version, "version is owned by the store")
}

func TestReview_RejectAtEachStage(t *testing.T) {
	chain := []Actor{tutorA, hodA, principal}

	for i, stage := range submission.Stages {
		t.Run(string(stage), func(t *testing.T) {
			e := newTestEngine()
			s := *newSubmission(submission.StatusPendingTutor)
			for _, a := range chain[:i] {
				var err error
				s, err = e.Review(s, a, ActionApprove, "")
				require.NoError(t, err)
			}

			s, err := e.Review(s, chain[i], ActionReject, "")
			require.NoError(t, err)
			assert.Equal(t, submission.StatusRejected, s.Status)

			// audit completeness: every stage up to the rejecting one, none beyond
			for j, st := range submission.Stages {
				if j <= i {
					r := s.ReviewFor(st)
					require.NotNil(t, r, "stage %s must be recorded", st)
					assert.Equal(t, chain[j].ID, r.ReviewerID)
				} else {
					assert.Nil(t, s.ReviewFor(st), "stage %s must be empty", st)
				}
			}
			// empty rejection comment is present, not absent
			current := s.ReviewFor(stage)
			require.NotNil(t, current)
			assert.Equal(t, "", current.Comment)
		})
	}
}

func TestReview_RejectionIsAbsorbing(t *testing.T) {
	e := newTestEngine()
	s, err := e.Review(*newSubmission(submission.StatusPendingTutor), tutorA, ActionReject, "incomplete")
	require.NoError(t, err)

	for _, a := range allReviews {
		for _, action := range []Action{ActionApprove, ActionReject} {
			_, err := e.Review(s, a, action, "again")
			requireAuthErr(t, err, ReasonTerminalState)
		}
	}
}

func TestReview_ApprovedIsTerminal(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingPrincipal)
	s, err := e.Review(s, principal, ActionApprove, "")
	require.NoError(t, err)
	require.Equal(t, submission.StatusApproved, s.Status)

	_, err = e.Review(s, principal, ActionReject, "changed my mind")
	requireAuthErr(t, err, ReasonTerminalState)
}

func TestReview_DuplicateRetryFailsWithWrongStage(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)

	first, err := e.Review(s, tutorA, ActionApprove, "ok")
	require.NoError(t, err)

	_, err = e.Review(first, tutorA, ActionApprove, "ok")
	requireAuthErr(t, err, ReasonWrongStage)
}

func TestReview_StageOwnership(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)

	unchanged, err := e.Review(s, tutorB, ActionApprove, "")
	requireAuthErr(t, err, ReasonWrongOrgUnit)
	assert.Equal(t, submission.StatusPendingTutor, unchanged.Status)
	assert.Nil(t, unchanged.ReviewFor(submission.StageTutor))
}

func TestReview_InvalidAction(t *testing.T) {
	e := newTestEngine()
	_, err := e.Review(*newSubmission(submission.StatusPendingTutor), tutorA, Action("escalate"), "")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestReview_ExistingTripleForCurrentStageIsRefused(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)
	require.NoError(t, s.RecordReview(submission.StageTutor, submission.Review{ReviewerID: 99, ReviewedAt: fixedNow}))

	_, err := e.Review(s, tutorA, ActionApprove, "")
	requireAuthErr(t, err, ReasonWrongStage)
	assert.Equal(t, uint(99), s.ReviewFor(submission.StageTutor).ReviewerID)
}

// Student submits F1, the course tutor approves, an HOD of another
// department is refused, the right HOD rejects with no comment and the
// principal can no longer act.
func TestReview_MedicalLeaveScenario(t *testing.T) {
	e := newTestEngine()
	s := *newSubmission(submission.StatusPendingTutor)
	s.Data = map[string]any{"Reason": "Medical leave"}

	s, err := e.Review(s, tutorA, ActionApprove, "ok")
	require.NoError(t, err)
	assert.Equal(t, submission.StatusPendingHOD, s.Status)
	require.NotNil(t, s.TutorReviewedAt)

	after, err := e.Review(s, hodB, ActionApprove, "")
	requireAuthErr(t, err, ReasonWrongOrgUnit)
	assert.Equal(t, submission.StatusPendingHOD, after.Status)

	s, err = e.Review(s, hodA, ActionReject, "")
	require.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, s.Status)
	require.NotNil(t, s.HODReviewedAt)
	require.NotNil(t, s.HODComment)
	assert.Equal(t, "", *s.HODComment)

	_, err = e.Review(s, principal, ActionApprove, "fine")
	requireAuthErr(t, err, ReasonTerminalState)
}
