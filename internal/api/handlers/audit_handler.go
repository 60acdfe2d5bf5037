package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Filter by user, resource, action and time range, with pagination.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "User ID"
// @Param        resource_type query     string   false  "Resource type" example("submission")
// @Param        resource_id   query     string   false  "Resource ID"
// @Param        action        query     string   false  "Action" example("review")
// @Param        start_time    query     string   false  "Start time (RFC3339)"
// @Param        end_time      query     string   false  "End time (RFC3339)"
// @Param        limit         query     int      false  "Max records (default 100, max 1000)"
// @Param        offset        query     int      false  "Offset"
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditFilter

	uid, err := utils.ParseOptionalUint(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
		return
	}
	params.UserID = uid

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		params.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// CleanupAuditLogs godoc
// @Summary      Delete old audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        older_than_days query int true "Retention in days"
// @Success      200 {object} response.MessageResponse
// @Failure      400 {object} response.ErrorResponse
// @Router       /audit/logs [delete]
func (h *AuditHandler) CleanupAuditLogs(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("older_than_days"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "older_than_days must be a positive integer"})
		return
	}
	n, err := h.svc.CleanupOldLogs(days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: strconv.FormatInt(n, 10) + " audit logs deleted"})
}

// SubmissionHistory godoc
// @Summary      Submission timeline
// @Description  Every recorded step of a submission, oldest first. Visible to whoever may view the submission.
// @Tags         submissions
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Submission ID"
// @Success      200 {array}   audit.HistoryEntry
// @Failure      403 {object}  response.ErrorResponse
// @Failure      404 {object}  response.ErrorResponse
// @Router       /submissions/{id}/history [get]
func (h *AuditHandler) SubmissionHistory(c *gin.Context) {
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

	history, err := h.svc.SubmissionHistory(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
