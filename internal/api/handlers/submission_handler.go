package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type SubmissionHandler struct {
	svc   *application.SubmissionService
	audit repository.AuditRepo
}

func NewSubmissionHandler(svc *application.SubmissionService, audit repository.AuditRepo) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, audit: audit}
}

// CreateSubmission godoc
// @Summary Submit a form
// @Description Answers are keyed by field label. Checkbox answers are a list or a comma-separated string; file answers are keys returned by /attachments.
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body submission.CreateSubmissionDTO true "Answers"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Field-level validation errors"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	formID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input submission.CreateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.CreateSubmission(formID, uid, input.Data)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, utils.SubmissionEvent("create", sub.ID, string(sub.Status), sub.Version, ""))
	c.JSON(http.StatusCreated, sub)
}

// ReviewSubmission godoc
// @Summary Approve or reject a submission
// @Description One endpoint for every reviewer role; the caller must own the submission's current stage.
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.ReviewDTO true "Decision"
// @Success 200 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "code is wrong_stage, wrong_org_unit or terminal_state"
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "code concurrent_modification: re-fetch and retry"
// @Router /submissions/{id}/review [put]
func (h *SubmissionHandler) ReviewSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input submission.ReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.ReviewSubmission(id, actor, workflow.Action(input.Action), input.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, utils.SubmissionEvent(input.Action, sub.ID, string(sub.Status), sub.Version, input.Comment))
	c.JSON(http.StatusOK, sub)
}

// GetSubmission godoc
// @Summary Get a submission
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} submission.Submission
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.svc.GetSubmission(id, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListSubmissions godoc
// @Summary List submissions in the caller's scope
// @Description Students see their own, tutors their course, HODs their department, principals and admins everything.
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param form_id query int false "Form filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} submission.Submission
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	filter, err := listFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	subs, err := h.svc.ListSubmissions(actor, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// ListMySubmissions godoc
// @Summary List the caller's own submissions
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} submission.Submission
// @Router /submissions/my [get]
func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	filter, err := listFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	filter.StudentID = &actor.ID

	subs, err := h.svc.ListSubmissions(actor, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// ListPending godoc
// @Summary Review queue
// @Description Submissions currently waiting on the caller's stage within the caller's scope.
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} submission.Submission
// @Failure 403 {object} response.ErrorResponse
// @Router /submissions/pending [get]
func (h *SubmissionHandler) ListPending(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.svc.PendingReviews(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetSlip godoc
// @Summary Download the decision slip
// @Tags submissions
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Submission ID"
// @Success 200 {file} binary
// @Failure 409 {object} response.ErrorResponse "Submission still in review"
// @Router /submissions/{id}/slip [get]
func (h *SubmissionHandler) GetSlip(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	pdf, err := h.svc.RenderSlip(id, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="submission-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetAttachment godoc
// @Summary Download an attached file
// @Description Redirects to a short-lived presigned URL.
// @Tags submissions
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param field path string true "File field label"
// @Success 302
// @Failure 404 {object} response.ErrorResponse
// @Router /submissions/{id}/attachments/{field} [get]
func (h *SubmissionHandler) GetAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	u, err := h.svc.AttachmentURL(c.Request.Context(), id, actor, c.Param("field"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, u.String())
}

func listFilterFromQuery(c *gin.Context) (submission.ListFilter, error) {
	var filter submission.ListFilter

	formID, err := utils.ParseOptionalUint(c, "form_id")
	if err != nil {
		return filter, fmt.Errorf("invalid form_id")
	}
	filter.FormID = formID

	if raw := c.Query("status"); raw != "" {
		status := submission.Status(raw)
		if !status.IsValid() {
			return filter, fmt.Errorf("invalid status %q", raw)
		}
		filter.Status = &status
	}

	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 50
	}
	return filter, nil
}
