package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/org"
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/testutils"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const password = "secret123"

type portal struct {
	router *gin.Engine
	tokens map[string]string
	ids    map[string]uint
	dept   org.Department
	course org.Course
}

func setupPortal(t *testing.T) *portal {
	config.JwtSecret = "routes-test-secret"
	config.TokenTTLHours = 1
	middleware.Init()

	repos := repository.NewRepositories(testutils.SetupPostgres(t))

	dept := org.Department{Name: "Computer Science", Code: "CSE", IsActive: true}
	require.NoError(t, repos.Org.CreateDepartment(&dept))
	course := org.Course{Name: "BTech", Code: "BTECH-CSE", DepartmentID: dept.ID, IsActive: true}
	require.NoError(t, repos.Org.CreateCourse(&course))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	users := []user.User{
		{Username: "student", Role: user.RoleStudent, DepartmentID: &dept.ID, CourseID: &course.ID},
		{Username: "tutor", Role: user.RoleTutor, DepartmentID: &dept.ID, CourseID: &course.ID},
		{Username: "hod", Role: user.RoleHOD, DepartmentID: &dept.ID},
		{Username: "principal", Role: user.RolePrincipal},
	}
	for i := range users {
		users[i].Name = users[i].Username
		users[i].Password = string(hashed)
		users[i].IsActive = true
		require.NoError(t, repos.User.CreateUser(&users[i]))
	}

	p := &portal{
		router: testutils.SetupRouter(repos, nil),
		tokens: map[string]string{},
		ids:    map[string]uint{},
		dept:   dept,
		course: course,
	}
	for _, u := range users {
		p.ids[u.Username] = u.ID
		w := p.do(t, "", http.MethodPost, "/login", map[string]string{"username": u.Username, "password": password})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var tok response.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
		p.tokens[u.Username] = tok.Token
	}
	return p
}

func (p *portal) do(t *testing.T, as, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+p.tokens[as])
	}
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

func (p *portal) review(t *testing.T, as string, id uint, action string) *httptest.ResponseRecorder {
	return p.do(t, as, http.MethodPut, fmt.Sprintf("/submissions/%d/review", id), submission.ReviewDTO{Action: action, Comment: as + " ok"})
}

func TestReviewChainEndToEnd(t *testing.T) {
	p := setupPortal(t)

	w := p.do(t, "hod", http.MethodPost, "/forms", form.CreateFormDTO{
		Title: "Medical leave",
		Fields: []form.FieldInput{
			{Label: "Reason", Type: form.FieldTextarea, Required: true},
			{Label: "Days", Type: form.FieldNumber, Required: true},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var def form.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))

	w = p.do(t, "student", http.MethodPost, fmt.Sprintf("/forms/%d/submissions", def.ID),
		submission.CreateSubmissionDTO{Data: map[string]any{"Reason": "fever", "Days": 3}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, submission.StatusPendingTutor, sub.Status)
	assert.Equal(t, uint(1), sub.Version)

	w = p.review(t, "hod", sub.ID, "approve")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"wrong_stage"`)

	w = p.do(t, "tutor", http.MethodGet, "/submissions/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending_tutor"`)

	w = p.review(t, "tutor", sub.ID, "approve")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, submission.StatusPendingHOD, sub.Status)

	// deactivating the form stops new submissions but not the ones in flight
	w = p.do(t, "hod", http.MethodPost, fmt.Sprintf("/forms/%d/deactivate", def.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = p.do(t, "student", http.MethodPost, fmt.Sprintf("/forms/%d/submissions", def.ID),
		submission.CreateSubmissionDTO{Data: map[string]any{"Reason": "cold", "Days": 1}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	for _, step := range []struct {
		as   string
		want submission.Status
	}{
		{"hod", submission.StatusPendingPrincipal},
		{"principal", submission.StatusApproved},
	} {
		w = p.review(t, step.as, sub.ID, "approve")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
		assert.Equal(t, step.want, sub.Status)
	}
	assert.Equal(t, uint(4), sub.Version)
	assert.Equal(t, "fever", sub.Data["Reason"])
	assert.Equal(t, "3", sub.Data["Days"])

	w = p.review(t, "principal", sub.ID, "reject")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"terminal_state"`)

	w = p.do(t, "student", http.MethodGet, fmt.Sprintf("/submissions/%d", sub.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var final submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &final))
	assert.Equal(t, submission.StatusApproved, final.Status)
	for _, st := range submission.Stages {
		r := final.ReviewFor(st)
		require.NotNil(t, r, st)
		assert.Equal(t, string(st)+" ok", r.Comment)
	}

	w = p.do(t, "student", http.MethodGet, fmt.Sprintf("/submissions/%d/slip", sub.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestRejectionStopsTheChain(t *testing.T) {
	p := setupPortal(t)

	w := p.do(t, "principal", http.MethodPost, "/forms", form.CreateFormDTO{
		Title:  "Hostel change",
		Fields: []form.FieldInput{{Label: "Block", Type: form.FieldSelect, Required: true, Options: []string{"A", "B"}}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var def form.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))

	w = p.do(t, "student", http.MethodPost, fmt.Sprintf("/forms/%d/submissions", def.ID),
		submission.CreateSubmissionDTO{Data: map[string]any{"Block": "C"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"Block"`)

	w = p.do(t, "student", http.MethodPost, fmt.Sprintf("/forms/%d/submissions", def.ID),
		submission.CreateSubmissionDTO{Data: map[string]any{"Block": "B"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))

	w = p.do(t, "tutor", http.MethodPut, fmt.Sprintf("/submissions/%d/review", sub.ID), submission.ReviewDTO{Action: "reject"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, submission.StatusRejected, sub.Status)
	require.NotNil(t, sub.TutorComment)
	assert.Equal(t, "", *sub.TutorComment)
	assert.Nil(t, sub.HODReviewerID)

	w = p.review(t, "hod", sub.ID, "approve")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = p.do(t, "student", http.MethodGet, "/submissions/my", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"rejected"`)

	w = p.do(t, "student", http.MethodPut, fmt.Sprintf("/submissions/%d/review", sub.ID), submission.ReviewDTO{Action: "approve"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden_role")
}

func TestRegistrationApprovalAndDeactivation(t *testing.T) {
	p := setupPortal(t)

	w := p.do(t, "", http.MethodPost, "/register", user.RegisterStudentInput{
		Username: "newbie", Password: password, Name: "New Student",
		DepartmentID: p.dept.ID, CourseID: p.course.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg user.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, user.ApprovalPending, reg.ApprovalStatus)

	login := map[string]string{"username": "newbie", "password": password}
	w = p.do(t, "", http.MethodPost, "/login", login)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = p.do(t, "hod", http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"newbie"`)

	w = p.do(t, "tutor", http.MethodPut, fmt.Sprintf("/students/%d/approval", reg.ID), user.RegistrationDecisionInput{Action: "approve"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = p.do(t, "hod", http.MethodPut, fmt.Sprintf("/students/%d/approval", reg.ID), user.RegistrationDecisionInput{Action: "approve"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = p.do(t, "principal", http.MethodPut, fmt.Sprintf("/students/%d/approval", reg.ID), user.RegistrationDecisionInput{Action: "reject"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = p.do(t, "", http.MethodPost, "/login", login)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = p.do(t, "hod", http.MethodPost, fmt.Sprintf("/users/%d/deactivate", p.ids["tutor"]), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = p.do(t, "", http.MethodPost, "/login", map[string]string{"username": "tutor", "password": password})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = p.do(t, "hod", http.MethodPost, fmt.Sprintf("/users/%d/deactivate", p.ids["principal"]), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubmissionHistoryEndpoint(t *testing.T) {
	p := setupPortal(t)

	w := p.do(t, "hod", http.MethodPost, "/forms", form.CreateFormDTO{
		Title:  "Library card",
		Fields: []form.FieldInput{{Label: "Reason", Type: form.FieldText, Required: true}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var def form.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))

	w = p.do(t, "student", http.MethodPost, fmt.Sprintf("/forms/%d/submissions", def.ID),
		submission.CreateSubmissionDTO{Data: map[string]any{"Reason": "lost"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub submission.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))

	w = p.review(t, "tutor", sub.ID, "approve")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	path := fmt.Sprintf("/submissions/%d/history", sub.ID)
	require.Eventually(t, func() bool {
		w = p.do(t, "student", http.MethodGet, path, nil)
		var history []audit.HistoryEntry
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &history) == nil &&
			len(history) == 2
	}, 5*time.Second, 50*time.Millisecond)

	var history []audit.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, "create", history[0].Action)
	assert.Equal(t, "pending_tutor", history[0].Status)
	assert.Equal(t, "approve", history[1].Action)
	assert.Equal(t, p.ids["tutor"], history[1].ActorID)
	assert.Equal(t, "tutor ok", history[1].Comment)
	assert.Equal(t, uint(2), history[1].Version)

	w = p.do(t, "hod", http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
