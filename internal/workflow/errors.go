package workflow

import (
	"errors"
	"fmt"

	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
)

var ErrInvalidAction = errors.New("invalid review action: use approve or reject")

// AuthorizationError is returned when the gate denies a review. It carries
// enough context to render a message without re-deriving it.
type AuthorizationError struct {
	Reason       DenyReason
	Status       submission.Status
	Stage        submission.Stage
	ActorRole    user.Role
	RequiredRole user.Role
}

func (e *AuthorizationError) Error() string {
	switch e.Reason {
	case ReasonTerminalState:
		return fmt.Sprintf("submission is %s and can no longer be reviewed", e.Status)
	case ReasonWrongOrgUnit:
		return fmt.Sprintf("%s is not responsible for this submission's %s stage", e.ActorRole, e.Stage)
	default:
		return fmt.Sprintf("submission is %s: only a %s can review it, not a %s", e.Status, e.RequiredRole, e.ActorRole)
	}
}

// ConcurrentModificationError reports a lost optimistic-concurrency race.
// The caller should re-fetch the submission and decide whether to retry.
type ConcurrentModificationError struct {
	SubmissionID    uint
	ExpectedVersion uint
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("submission %d was modified concurrently (expected version %d)", e.SubmissionID, e.ExpectedVersion)
}
