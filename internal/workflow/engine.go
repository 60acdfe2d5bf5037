package workflow

import (
	"time"

	"github.com/linskybing/request-portal/internal/domain/submission"
)

// Action is a reviewer's decision.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

// Engine computes workflow transitions. It performs no I/O; persisting the
// result is the caller's job.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock is used where review timestamps must be deterministic.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Review applies action by actor to a copy of s and returns the copy.
// The current stage's audit triple is always written, approve advances the
// status one stage (principal approval is final), reject ends the workflow.
func (e *Engine) Review(s submission.Submission, actor Actor, action Action, comment string) (submission.Submission, error) {
	if !action.IsValid() {
		return s, ErrInvalidAction
	}
	d := Authorize(actor, &s)
	if err := d.Err(actor, s.Status); err != nil {
		return s, err
	}

	next := s
	review := submission.Review{
		ReviewerID: actor.ID,
		ReviewedAt: e.now().UTC(),
		Comment:    comment,
	}
	if err := next.RecordReview(d.Stage, review); err != nil {
		// an existing triple for the current stage means the state is inconsistent;
		// treat it like a late review
		return s, &AuthorizationError{
			Reason:       ReasonWrongStage,
			Status:       s.Status,
			Stage:        d.Stage,
			ActorRole:    actor.Role,
			RequiredRole: d.RequiredRole,
		}
	}

	switch action {
	case ActionApprove:
		next.Status = d.Stage.Approved()
	case ActionReject:
		next.Status = submission.StatusRejected
	}
	return next, nil
}
