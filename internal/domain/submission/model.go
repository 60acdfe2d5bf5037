package submission

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Status is the workflow position of a submission.
type Status string

const (
	StatusPendingTutor     Status = "pending_tutor"
	StatusPendingHOD       Status = "pending_hod"
	StatusPendingPrincipal Status = "pending_principal"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingTutor, StatusPendingHOD, StatusPendingPrincipal, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Stage returns the review stage that currently owns the submission.
func (s Status) Stage() (Stage, bool) {
	switch s {
	case StatusPendingTutor:
		return StageTutor, true
	case StatusPendingHOD:
		return StageHOD, true
	case StatusPendingPrincipal:
		return StagePrincipal, true
	}
	return "", false
}

// Stage is one of the three ordered review steps.
type Stage string

const (
	StageTutor     Stage = "tutor"
	StageHOD       Stage = "hod"
	StagePrincipal Stage = "principal"
)

// Stages lists the review steps in order.
var Stages = []Stage{StageTutor, StageHOD, StagePrincipal}

// Pending is the status a submission has while waiting on this stage.
func (st Stage) Pending() Status {
	switch st {
	case StageTutor:
		return StatusPendingTutor
	case StageHOD:
		return StatusPendingHOD
	case StagePrincipal:
		return StatusPendingPrincipal
	}
	return ""
}

// Approved is the status reached when this stage approves.
func (st Stage) Approved() Status {
	switch st {
	case StageTutor:
		return StatusPendingHOD
	case StageHOD:
		return StatusPendingPrincipal
	case StagePrincipal:
		return StatusApproved
	}
	return ""
}

// Review is the audit triple written once when a stage's reviewer acts.
type Review struct {
	ReviewerID uint      `json:"reviewer_id"`
	ReviewedAt time.Time `json:"reviewed_at"`
	Comment    string    `json:"comment"`
}

var ErrReviewAlreadyRecorded = errors.New("review already recorded for this stage")

// Submission is one student's filled-in form moving through the review chain.
// CourseID and DepartmentID snapshot the student's org units at submission time.
type Submission struct {
	ID           uint              `gorm:"primaryKey;column:id" json:"id"`
	FormID       uint              `gorm:"not null;index;column:form_id" json:"form_id"`
	StudentID    uint              `gorm:"not null;index;column:student_id" json:"student_id"`
	CourseID     uint              `gorm:"not null;index;column:course_id" json:"course_id"`
	DepartmentID uint              `gorm:"not null;index;column:department_id" json:"department_id"`
	Data         datatypes.JSONMap `gorm:"type:jsonb;not null" json:"data" swaggertype:"object"`
	Status       Status            `gorm:"size:32;not null;index;default:'pending_tutor'" json:"status"`
	Version      uint              `gorm:"not null;default:1" json:"version"`
	SubmittedAt  time.Time         `gorm:"not null;column:submitted_at" json:"submitted_at"`

	TutorReviewerID *uint      `gorm:"column:tutor_reviewer_id" json:"tutor_reviewer_id"`
	TutorReviewedAt *time.Time `gorm:"column:tutor_reviewed_at" json:"tutor_reviewed_at"`
	TutorComment    *string    `gorm:"column:tutor_comment;type:text" json:"tutor_comment"`

	HODReviewerID *uint      `gorm:"column:hod_reviewer_id" json:"hod_reviewer_id"`
	HODReviewedAt *time.Time `gorm:"column:hod_reviewed_at" json:"hod_reviewed_at"`
	HODComment    *string    `gorm:"column:hod_comment;type:text" json:"hod_comment"`

	PrincipalReviewerID *uint      `gorm:"column:principal_reviewer_id" json:"principal_reviewer_id"`
	PrincipalReviewedAt *time.Time `gorm:"column:principal_reviewed_at" json:"principal_reviewed_at"`
	PrincipalComment    *string    `gorm:"column:principal_comment;type:text" json:"principal_comment"`
}

func (Submission) TableName() string {
	return "submissions"
}

// ReviewFor returns the stage's audit triple, or nil if the stage has not acted.
func (s *Submission) ReviewFor(stage Stage) *Review {
	var id *uint
	var at *time.Time
	var comment *string
	switch stage {
	case StageTutor:
		id, at, comment = s.TutorReviewerID, s.TutorReviewedAt, s.TutorComment
	case StageHOD:
		id, at, comment = s.HODReviewerID, s.HODReviewedAt, s.HODComment
	case StagePrincipal:
		id, at, comment = s.PrincipalReviewerID, s.PrincipalReviewedAt, s.PrincipalComment
	}
	if id == nil || at == nil {
		return nil
	}
	r := &Review{ReviewerID: *id, ReviewedAt: *at}
	if comment != nil {
		r.Comment = *comment
	}
	return r
}

// RecordReview writes the stage's audit triple. A triple is written at most once.
func (s *Submission) RecordReview(stage Stage, r Review) error {
	if s.ReviewFor(stage) != nil {
		return ErrReviewAlreadyRecorded
	}
	id, at, comment := r.ReviewerID, r.ReviewedAt, r.Comment
	switch stage {
	case StageTutor:
		s.TutorReviewerID, s.TutorReviewedAt, s.TutorComment = &id, &at, &comment
	case StageHOD:
		s.HODReviewerID, s.HODReviewedAt, s.HODComment = &id, &at, &comment
	case StagePrincipal:
		s.PrincipalReviewerID, s.PrincipalReviewedAt, s.PrincipalComment = &id, &at, &comment
	default:
		return errors.New("unknown stage " + string(stage))
	}
	return nil
}

// Reached reports whether the stage has owned the submission at some point:
// it is the current stage or it has already acted.
func (s *Submission) Reached(stage Stage) bool {
	if current, ok := s.Status.Stage(); ok && current == stage {
		return true
	}
	return s.ReviewFor(stage) != nil
}

// ReviewedBy reports whether the user wrote any of the audit triples.
func (s *Submission) ReviewedBy(userID uint) bool {
	for _, st := range Stages {
		if r := s.ReviewFor(st); r != nil && r.ReviewerID == userID {
			return true
		}
	}
	return false
}
