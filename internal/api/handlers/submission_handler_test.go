package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/repository/mock"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/types"
	"github.com/linskybing/request-portal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	cse   = uint(1)
	btech = uint(10)

	studentClaims   = &types.Claims{UserID: 100, Username: "alice", Role: string(user.RoleStudent), CourseID: &btech, DepartmentID: &cse}
	tutorClaims     = &types.Claims{UserID: 200, Username: "tutor", Role: string(user.RoleTutor), CourseID: &btech, DepartmentID: &cse}
	hodClaims       = &types.Claims{UserID: 300, Username: "hod", Role: string(user.RoleHOD), DepartmentID: &cse}
	principalClaims = &types.Claims{UserID: 400, Username: "principal", Role: string(user.RolePrincipal)}
)

type submissionFixture struct {
	router     *gin.Engine
	claims     **types.Claims
	user       *mock.MockUserRepo
	form       *mock.MockFormRepo
	submission *mock.MockSubmissionRepo
	audit      *mock.MockAuditRepo
	audited    []string
	events     []audit.Event
}

// openTestDB gives ExecTx an in-memory sqlite connection to run on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := dbConn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return dbConn
}

func setupSubmissionHandler(t *testing.T) *submissionFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := &submissionFixture{
		user:       mock.NewMockUserRepo(ctrl),
		form:       mock.NewMockFormRepo(ctrl),
		submission: mock.NewMockSubmissionRepo(ctrl),
		audit:      mock.NewMockAuditRepo(ctrl),
	}
	f.user.EXPECT().WithTx(gomock.Any()).Return(f.user).AnyTimes()
	f.form.EXPECT().WithTx(gomock.Any()).Return(f.form).AnyTimes()
	f.submission.EXPECT().WithTx(gomock.Any()).Return(f.submission).AnyTimes()
	f.audit.EXPECT().WithTx(gomock.Any()).Return(f.audit).AnyTimes()

	repos := repository.NewRepositories(openTestDB(t))
	repos.User = f.user
	repos.Form = f.form
	repos.Submission = f.submission
	repos.Audit = f.audit

	oldAudit := utils.RecordAudit
	utils.RecordAudit = func(c *gin.Context, repo repository.AuditRepo, e audit.Event) {
		f.events = append(f.events, e)
		f.audited = append(f.audited, fmt.Sprintf("%s %s %d", e.Action, e.ResourceType, e.ResourceID))
	}
	t.Cleanup(func() { utils.RecordAudit = oldAudit })

	svc := application.New(repos, nil)
	h := NewSubmissionHandler(svc.Submission, repos.Audit)
	ah := NewAuditHandler(svc.Audit)

	var current *types.Claims
	f.claims = &current
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if current != nil {
			c.Set("claims", current)
		}
		c.Next()
	})
	r.POST("/forms/:id/submissions", h.CreateSubmission)
	r.GET("/submissions", h.ListSubmissions)
	r.GET("/submissions/:id", h.GetSubmission)
	r.PUT("/submissions/:id/review", h.ReviewSubmission)
	r.GET("/submissions/:id/slip", h.GetSlip)
	r.GET("/submissions/:id/history", ah.SubmissionHistory)
	r.GET("/submissions/:id/attachments/:field", h.GetAttachment)
	f.router = r
	return f
}

func (f *submissionFixture) do(claims *types.Claims, method, path string, body any) *httptest.ResponseRecorder {
	*f.claims = claims
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func storedSubmission(status submission.Status, version uint) submission.Submission {
	return submission.Submission{
		ID: 42, FormID: 5, StudentID: 100, CourseID: btech, DepartmentID: cse,
		Data:        map[string]any{"Reason": "flu"},
		Status:      status,
		Version:     version,
		SubmittedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestReviewSubmission_Approve(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingTutor, 1), nil)
	f.submission.EXPECT().CompareAndSwap(uint(42), uint(1), gomock.Any()).
		DoAndReturn(func(id, expected uint, next *submission.Submission) (bool, error) {
			next.Version = expected + 1
			return true, nil
		})

	w := f.do(tutorClaims, http.MethodPut, "/submissions/42/review", map[string]string{"action": "approve", "comment": "ok"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, submission.StatusPendingHOD, got.Status)
	assert.Equal(t, uint(2), got.Version)
	require.NotNil(t, got.TutorReviewerID)
	assert.Equal(t, uint(200), *got.TutorReviewerID)
	assert.Equal(t, []string{"approve submission 42"}, f.audited)
	require.Len(t, f.events, 1)
	assert.Equal(t, audit.StatusChange{Status: "pending_hod", Version: 2, Comment: "ok"}, f.events[0].After)
}

func TestReviewSubmission_WrongStageBody(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingTutor, 1), nil)

	w := f.do(hodClaims, http.MethodPut, "/submissions/42/review", map[string]string{"action": "approve"})
	require.Equal(t, http.StatusForbidden, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "wrong_stage", body.Code)
	assert.Equal(t, "tutor", body.Stage)
	assert.Equal(t, "tutor", body.RequiredRole)
	assert.Empty(t, f.audited)
}

func TestReviewSubmission_TerminalBody(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusApproved, 4), nil)

	w := f.do(principalClaims, http.MethodPut, "/submissions/42/review", map[string]string{"action": "reject"})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "terminal_state", decodeError(t, w).Code)
}

func TestReviewSubmission_LostRace(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingHOD, 2), nil)
	f.submission.EXPECT().CompareAndSwap(uint(42), uint(2), gomock.Any()).Return(false, nil)

	w := f.do(hodClaims, http.MethodPut, "/submissions/42/review", map[string]string{"action": "reject", "comment": "late"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "concurrent_modification", decodeError(t, w).Code)
}

func TestReviewSubmission_BadInput(t *testing.T) {
	f := setupSubmissionHandler(t)

	w := f.do(tutorClaims, http.MethodPut, "/submissions/abc/review", map[string]string{"action": "approve"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(tutorClaims, http.MethodPut, "/submissions/42/review", map[string]string{"action": "escalate"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "action", body.Fields[0].Field)

	f.submission.EXPECT().GetSubmissionByID(uint(9)).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	w = f.do(tutorClaims, http.MethodPut, "/submissions/9/review", map[string]string{"action": "approve"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSubmission_FieldErrors(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.user.EXPECT().GetUserByID(uint(100)).Return(user.User{ID: 100, Role: user.RoleStudent, CourseID: &btech, DepartmentID: &cse}, nil)
	f.form.EXPECT().LockForm(uint(5), repository.LockForShare).Return(nil)
	f.form.EXPECT().GetFormByID(uint(5)).Return(form.Definition{
		ID: 5, Title: "Leave", IsActive: true,
		Fields: []form.Field{
			{Label: "Reason", Type: form.FieldText, Required: true},
			{Label: "Contact", Type: form.FieldEmail},
		},
	}, nil)

	w := f.do(studentClaims, http.MethodPost, "/forms/5/submissions", map[string]any{
		"data": map[string]any{"Contact": "not-an-email"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeError(t, w)
	fields := map[string]string{}
	for _, fe := range body.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "is required", fields["Reason"])
	assert.Contains(t, fields, "Contact")
	assert.Empty(t, f.audited)
}

func TestCreateSubmission_Created(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.user.EXPECT().GetUserByID(uint(100)).Return(user.User{ID: 100, Role: user.RoleStudent, CourseID: &btech, DepartmentID: &cse}, nil)
	f.form.EXPECT().LockForm(uint(5), repository.LockForShare).Return(nil)
	f.form.EXPECT().GetFormByID(uint(5)).Return(form.Definition{
		ID: 5, Title: "Leave", IsActive: true,
		Fields: []form.Field{{Label: "Reason", Type: form.FieldText, Required: true}},
	}, nil)
	f.submission.EXPECT().CreateSubmission(gomock.Any()).DoAndReturn(func(s *submission.Submission) error {
		s.ID = 77
		return nil
	})

	w := f.do(studentClaims, http.MethodPost, "/forms/5/submissions", map[string]any{
		"data": map[string]any{"Reason": "flu"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, []string{"create submission 77"}, f.audited)
}

func TestSubmissionHistory_Timeline(t *testing.T) {
	f := setupSubmissionHandler(t)

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingHOD, 2), nil)
	f.audit.EXPECT().ResourceHistory(audit.ResourceSubmission, uint(42)).Return([]audit.AuditLog{
		{UserID: 100, Action: "create", NewData: []byte(`{"status":"pending_tutor","version":1}`), CreatedAt: at},
		{UserID: 200, Action: "approve", NewData: []byte(`{"status":"pending_hod","version":2,"comment":"ok"}`), CreatedAt: at.Add(time.Hour)},
	}, nil)

	w := f.do(studentClaims, http.MethodGet, "/submissions/42/history", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var history []audit.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "create", history[0].Action)
	assert.Equal(t, uint(200), history[1].ActorID)
	assert.Equal(t, "pending_hod", history[1].Status)
	assert.Equal(t, "ok", history[1].Comment)
}

func TestSubmissionHistory_Scoped(t *testing.T) {
	f := setupSubmissionHandler(t)

	other := &types.Claims{UserID: 101, Role: string(user.RoleStudent), CourseID: &btech, DepartmentID: &cse}
	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingTutor, 1), nil)
	w := f.do(other, http.MethodGet, "/submissions/42/history", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.submission.EXPECT().GetSubmissionByID(uint(9)).Return(submission.Submission{}, gorm.ErrRecordNotFound)
	w = f.do(principalClaims, http.MethodGet, "/submissions/9/history", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(principalClaims, http.MethodGet, "/submissions/x/history", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSubmission_ForbiddenForOtherStudent(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingTutor, 1), nil)

	other := &types.Claims{UserID: 101, Role: string(user.RoleStudent), CourseID: &btech, DepartmentID: &cse}
	w := f.do(other, http.MethodGet, "/submissions/42", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSubmission_Unauthenticated(t *testing.T) {
	f := setupSubmissionHandler(t)

	w := f.do(nil, http.MethodGet, "/submissions/42", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSubmissions_InvalidStatus(t *testing.T) {
	f := setupSubmissionHandler(t)

	w := f.do(principalClaims, http.MethodGet, "/submissions?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSubmissions_TutorScope(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().ListSubmissions(gomock.Any()).DoAndReturn(func(filter submission.ListFilter) ([]submission.Submission, error) {
		require.NotNil(t, filter.CourseID)
		assert.Equal(t, btech, *filter.CourseID)
		require.NotNil(t, filter.Status)
		assert.Equal(t, submission.StatusPendingTutor, *filter.Status)
		assert.Equal(t, 50, filter.Limit)
		return []submission.Submission{storedSubmission(submission.StatusPendingTutor, 1)}, nil
	})

	w := f.do(tutorClaims, http.MethodGet, "/submissions?status=pending_tutor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestGetSlip_NotReady(t *testing.T) {
	f := setupSubmissionHandler(t)

	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(storedSubmission(submission.StatusPendingHOD, 2), nil)

	w := f.do(studentClaims, http.MethodGet, "/submissions/42/slip", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetAttachment_NoStore(t *testing.T) {
	f := setupSubmissionHandler(t)

	sub := storedSubmission(submission.StatusPendingTutor, 1)
	sub.Data["Proof"] = application.AttachmentPrefix(100) + "x-proof.pdf"
	f.submission.EXPECT().GetSubmissionByID(uint(42)).Return(sub, nil)
	f.form.EXPECT().GetFormByID(uint(5)).Return(form.Definition{
		ID: 5, Fields: []form.Field{{Label: "Proof", Type: form.FieldFile}},
	}, nil)

	w := f.do(studentClaims, http.MethodGet, "/submissions/42/attachments/Proof", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
