package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
	audit   repository.AuditRepo
}

func NewFormHandler(service *application.FormService, audit repository.AuditRepo) *FormHandler {
	return &FormHandler{service: service, audit: audit}
}

// CreateForm godoc
// @Summary Create a form definition
// @Description Admins and principals may create global or department forms; HOD forms always belong to the HOD's department.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateFormDTO true "Form"
// @Success 201 {object} form.Definition
// @Failure 400 {object} response.ErrorResponse "Invalid definition"
// @Failure 403 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	d, err := h.service.CreateForm(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		Action: "create", ResourceType: audit.ResourceForm, ResourceID: d.ID,
		After: d, Description: "form created",
	})
	c.JSON(http.StatusCreated, d)
}

// ListForms godoc
// @Summary List visible forms
// @Description Students, tutors and HODs see active global forms plus their department's; admins and principals see all.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param include_inactive query bool false "Include deactivated forms (form managers only)"
// @Success 200 {array} form.Definition
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	forms, err := h.service.ListForms(actor, includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form definition
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Definition
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
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

	d, err := h.service.GetForm(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateForm godoc
// @Summary Update a form definition
// @Description Fields can only be replaced while the form has no submissions.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateFormDTO true "Changes"
// @Success 200 {object} form.Definition
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Form already has submissions"
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	d, err := h.service.UpdateForm(actor, id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		Action: "update", ResourceType: audit.ResourceForm, ResourceID: id,
		After: input, Description: "form updated",
	})
	c.JSON(http.StatusOK, d)
}

// DeactivateForm godoc
// @Summary Deactivate a form
// @Description Stops new submissions; submissions in flight continue.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Definition
// @Failure 403 {object} response.ErrorResponse
// @Router /forms/{id}/deactivate [post]
func (h *FormHandler) DeactivateForm(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateForm godoc
// @Summary Reactivate a form
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Definition
// @Failure 403 {object} response.ErrorResponse
// @Router /forms/{id}/activate [post]
func (h *FormHandler) ActivateForm(c *gin.Context) {
	h.setActive(c, true)
}

func (h *FormHandler) setActive(c *gin.Context, active bool) {
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

	d, err := h.service.SetFormActive(actor, id, active)
	if err != nil {
		writeError(c, err)
		return
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	utils.RecordAudit(c, h.audit, audit.Event{
		Action: action, ResourceType: audit.ResourceForm, ResourceID: id,
		After: gin.H{"is_active": active}, Description: "form " + action + "d",
	})
	c.JSON(http.StatusOK, d)
}
