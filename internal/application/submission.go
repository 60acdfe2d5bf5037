package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/slip"
	"github.com/linskybing/request-portal/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const attachmentLinkTTL = 15 * time.Minute

type SubmissionService struct {
	Repos  *repository.Repos
	Engine *workflow.Engine
	Store  storage.ObjectStore
	now    func() time.Time
}

func NewSubmissionService(repos *repository.Repos, store storage.ObjectStore) *SubmissionService {
	return &SubmissionService{
		Repos:  repos,
		Engine: workflow.NewEngine(),
		Store:  store,
		now:    time.Now,
	}
}

func (s *SubmissionService) findSubmission(id uint) (submission.Submission, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.Submission{}, ErrSubmissionNotFound
		}
		return submission.Submission{}, err
	}
	return sub, nil
}

// CreateSubmission validates the answers against the form and stores a new
// submission waiting on the student's tutor. Nothing is written when any
// answer is invalid. The form row is share-locked while the answers are
// checked, so a concurrent field change cannot land in between.
func (s *SubmissionService) CreateSubmission(formID, studentID uint, data map[string]any) (submission.Submission, error) {
	student, err := s.Repos.User.GetUserByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.Submission{}, ErrUserNotFound
		}
		return submission.Submission{}, err
	}
	if student.Role != user.RoleStudent || student.CourseID == nil || student.DepartmentID == nil {
		return submission.Submission{}, ErrNotStudent
	}

	var sub submission.Submission
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.LockForm(formID, repository.LockForShare); err != nil {
			return formLookupError(err)
		}
		def, err := findForm(tx, formID)
		if err != nil {
			return err
		}
		if !def.IsActive {
			return ErrFormInactive
		}
		if !def.AvailableTo(*student.DepartmentID) {
			return ErrFormNotAvailable
		}

		verr := &form.ValidationError{}
		if err := def.ValidateAnswers(data); err != nil && !errors.As(err, &verr) {
			return err
		}
		checkAttachmentOwner(&def, data, studentID, verr)
		if err := verr.OrNil(); err != nil {
			return err
		}

		sub = submission.Submission{
			FormID:       def.ID,
			StudentID:    student.ID,
			CourseID:     *student.CourseID,
			DepartmentID: *student.DepartmentID,
			Data:         datatypes.JSONMap(def.NormalizeAnswers(data)),
			Status:       submission.StatusPendingTutor,
			Version:      1,
			SubmittedAt:  s.now().UTC(),
		}
		return tx.Submission.CreateSubmission(&sub)
	})
	if err != nil {
		return submission.Submission{}, err
	}
	zap.L().Info("submission created",
		zap.Uint("submission_id", sub.ID),
		zap.Uint("form_id", sub.FormID),
		zap.Uint("student_id", sub.StudentID))
	return sub, nil
}

// checkAttachmentOwner rejects file answers that do not point at the
// student's own uploads.
func checkAttachmentOwner(def *form.Definition, data map[string]any, studentID uint, verr *form.ValidationError) {
	prefix := AttachmentPrefix(studentID)
	for i := range def.Fields {
		f := &def.Fields[i]
		if f.Type != form.FieldFile || verr.Has(f.Label) {
			continue
		}
		values, err := form.AnswerValues(f, data[f.Label])
		if err != nil || len(values) == 0 {
			continue
		}
		if !strings.HasPrefix(values[0], prefix) || len(values[0]) == len(prefix) {
			verr.Add(f.Label, "must reference a file you uploaded")
		}
	}
}

// ReviewSubmission applies one review by the actor. The write only lands if
// nobody changed the submission since it was read; otherwise a
// *workflow.ConcurrentModificationError is returned and nothing is written.
func (s *SubmissionService) ReviewSubmission(id uint, actor workflow.Actor, action workflow.Action, comment string) (submission.Submission, error) {
	current, err := s.findSubmission(id)
	if err != nil {
		return submission.Submission{}, err
	}

	next, err := s.Engine.Review(current, actor, action, comment)
	if err != nil {
		return submission.Submission{}, err
	}

	ok, err := s.Repos.Submission.CompareAndSwap(current.ID, current.Version, &next)
	if err != nil {
		return submission.Submission{}, err
	}
	if !ok {
		zap.L().Warn("review lost a concurrent update",
			zap.Uint("submission_id", current.ID),
			zap.Uint("expected_version", current.Version),
			zap.Uint("reviewer_id", actor.ID))
		return submission.Submission{}, &workflow.ConcurrentModificationError{
			SubmissionID:    current.ID,
			ExpectedVersion: current.Version,
		}
	}

	zap.L().Info("submission reviewed",
		zap.Uint("submission_id", next.ID),
		zap.String("action", string(action)),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next.Status)),
		zap.Uint("reviewer_id", actor.ID),
		zap.Uint("version", next.Version))
	return next, nil
}

func (s *SubmissionService) GetSubmission(id uint, actor workflow.Actor) (submission.Submission, error) {
	sub, err := s.findSubmission(id)
	if err != nil {
		return submission.Submission{}, err
	}
	if !workflow.CanView(actor, &sub) {
		return submission.Submission{}, ErrForbidden
	}
	return sub, nil
}

// ListSubmissions narrows the filter to the actor's scope: students see their
// own, tutors their course, HODs their department, principals and admins all.
func (s *SubmissionService) ListSubmissions(actor workflow.Actor, filter submission.ListFilter) ([]submission.Submission, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatusFilter
	}
	switch actor.Role {
	case user.RoleStudent:
		filter.StudentID = &actor.ID
	case user.RoleTutor:
		course := actor.OrgUnitID
		filter.CourseID = &course
	case user.RoleHOD:
		dept := actor.OrgUnitID
		filter.DepartmentID = &dept
	case user.RolePrincipal, user.RoleAdmin:
	default:
		return nil, ErrForbidden
	}
	return s.Repos.Submission.ListSubmissions(filter)
}

// PendingReviews lists the submissions currently waiting on the actor's stage.
func (s *SubmissionService) PendingReviews(actor workflow.Actor) ([]submission.Submission, error) {
	filter := submission.ListFilter{}
	var status submission.Status
	switch actor.Role {
	case user.RoleTutor:
		status = submission.StatusPendingTutor
		course := actor.OrgUnitID
		filter.CourseID = &course
	case user.RoleHOD:
		status = submission.StatusPendingHOD
		dept := actor.OrgUnitID
		filter.DepartmentID = &dept
	case user.RolePrincipal:
		status = submission.StatusPendingPrincipal
	default:
		return nil, ErrNotReviewer
	}
	filter.Status = &status
	return s.Repos.Submission.ListSubmissions(filter)
}

// AttachmentURL returns a short-lived download link for a file answer.
func (s *SubmissionService) AttachmentURL(ctx context.Context, id uint, actor workflow.Actor, label string) (*url.URL, error) {
	sub, err := s.GetSubmission(id, actor)
	if err != nil {
		return nil, err
	}
	def, err := s.Repos.Form.GetFormByID(sub.FormID)
	if err != nil {
		return nil, err
	}
	f, ok := def.FieldByLabel(label)
	if !ok || f.Type != form.FieldFile {
		return nil, ErrAttachmentNotFound
	}
	values, err := form.AnswerValues(f, sub.Data[label])
	if err != nil || len(values) == 0 {
		return nil, ErrAttachmentNotFound
	}
	if s.Store == nil {
		return nil, ErrStorageUnavailable
	}
	return s.Store.PresignGet(ctx, values[0], attachmentLinkTTL)
}

// RenderSlip produces the PDF decision slip of an approved or rejected submission.
func (s *SubmissionService) RenderSlip(id uint, actor workflow.Actor) ([]byte, error) {
	sub, err := s.GetSubmission(id, actor)
	if err != nil {
		return nil, err
	}
	if !sub.Status.IsTerminal() {
		return nil, ErrSlipNotReady
	}

	def, err := s.Repos.Form.GetFormByID(sub.FormID)
	if err != nil {
		return nil, err
	}

	doc := slip.Document{
		SubmissionID: sub.ID,
		FormTitle:    def.Title,
		StudentName:  s.displayName(sub.StudentID),
		Status:       string(sub.Status),
		SubmittedAt:  sub.SubmittedAt,
		VerifyURL:    fmt.Sprintf("%s/submissions/%d", config.PublicBaseURL, sub.ID),
	}
	if c, err := s.Repos.Org.GetCourseByID(sub.CourseID); err == nil {
		doc.Course = c.Name
	}
	if d, err := s.Repos.Org.GetDepartmentByID(sub.DepartmentID); err == nil {
		doc.Department = d.Name
	}

	for i := range def.Fields {
		f := &def.Fields[i]
		values, _ := form.AnswerValues(f, sub.Data[f.Label])
		doc.Answers = append(doc.Answers, slip.Answer{Label: f.Label, Value: strings.Join(values, ", ")})
	}
	for _, stage := range submission.Stages {
		r := sub.ReviewFor(stage)
		if r == nil {
			continue
		}
		doc.Decisions = append(doc.Decisions, slip.Decision{
			Stage:      stageTitle(stage),
			Reviewer:   s.displayName(r.ReviewerID),
			ReviewedAt: r.ReviewedAt,
			Comment:    r.Comment,
		})
	}

	return slip.Render(doc)
}

func (s *SubmissionService) displayName(userID uint) string {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return fmt.Sprintf("user #%d", userID)
	}
	return u.Name
}

func stageTitle(stage submission.Stage) string {
	switch stage {
	case submission.StageTutor:
		return "Tutor"
	case submission.StageHOD:
		return "Head of Department"
	case submission.StagePrincipal:
		return "Principal"
	}
	return string(stage)
}
