package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/response"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{workflow.ErrInvalidAction, http.StatusBadRequest},

	{application.ErrSubmissionNotFound, http.StatusNotFound},
	{application.ErrFormNotFound, http.StatusNotFound},
	{application.ErrUserNotFound, http.StatusNotFound},
	{application.ErrDepartmentNotFound, http.StatusNotFound},
	{application.ErrCourseNotFound, http.StatusNotFound},
	{application.ErrAttachmentNotFound, http.StatusNotFound},

	{application.ErrForbidden, http.StatusForbidden},
	{application.ErrNotStudent, http.StatusForbidden},
	{application.ErrNotReviewer, http.StatusForbidden},
	{application.ErrFormNotAvailable, http.StatusForbidden},
	{application.ErrRegistrationPending, http.StatusForbidden},
	{application.ErrRegistrationRejected, http.StatusForbidden},

	{application.ErrInvalidCredentials, http.StatusUnauthorized},
	{application.ErrUserInactive, http.StatusUnauthorized},

	{application.ErrUsernameTaken, http.StatusConflict},
	{application.ErrPrincipalExists, http.StatusConflict},
	{application.ErrFormHasSubmissions, http.StatusConflict},
	{application.ErrSlipNotReady, http.StatusConflict},
	{application.ErrRegistrationDecided, http.StatusConflict},

	{application.ErrFormInactive, http.StatusBadRequest},
	{application.ErrCourseDepartmentMismatch, http.StatusBadRequest},
	{application.ErrInvalidStatusFilter, http.StatusBadRequest},
	{application.ErrInvalidApprovalFilter, http.StatusBadRequest},
	{application.ErrEmptyFile, http.StatusBadRequest},
	{application.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{application.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrPrincipalHasDepartment, http.StatusBadRequest},
	{user.ErrDepartmentRequired, http.StatusBadRequest},
	{user.ErrCourseRequired, http.StatusBadRequest},
}

// writeError maps service errors onto the JSON error body. Anything
// unrecognised is a 500 and is logged.
func writeError(c *gin.Context, err error) {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		body := response.ErrorResponse{Error: "validation failed"}
		for _, f := range verr.Fields {
			body.Fields = append(body.Fields, response.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var authErr *workflow.AuthorizationError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Error:        authErr.Error(),
			Code:         string(authErr.Reason),
			Stage:        string(authErr.Stage),
			RequiredRole: string(authErr.RequiredRole),
		})
		return
	}

	var casErr *workflow.ConcurrentModificationError
	if errors.As(err, &casErr) {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Error: casErr.Error(),
			Code:  "concurrent_modification",
		})
		return
	}

	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			c.JSON(m.status, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	_ = c.Error(err)
	zap.L().Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
}

// writeBindError turns binding failures into readable messages.
func writeBindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	fields := make([]response.FieldError, 0, len(verr))
	for _, fe := range verr {
		lbl := strings.ToLower(fe.Field())

		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = fmt.Sprintf("must be at least %s", fe.Param())
		case "max":
			msg = fmt.Sprintf("must be at most %s", fe.Param())
		case "email":
			msg = "must be a valid email address"
		case "oneof":
			msg = fmt.Sprintf("must be one of [%s]", fe.Param())
		default:
			msg = "is invalid"
		}
		msgs = append(msgs, lbl+" "+msg)
		fields = append(fields, response.FieldError{Field: lbl, Message: msg})
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; "), Fields: fields})
}
