package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/org"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type OrgHandler struct {
	svc   *application.OrgService
	audit repository.AuditRepo
}

func NewOrgHandler(svc *application.OrgService, audit repository.AuditRepo) *OrgHandler {
	return &OrgHandler{svc: svc, audit: audit}
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags org
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body org.CreateDepartmentDTO true "Department"
// @Success 201 {object} org.Department
// @Failure 400 {object} response.ErrorResponse
// @Router /departments [post]
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var input org.CreateDepartmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	d, err := h.svc.CreateDepartment(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListDepartments godoc
// @Summary List departments
// @Tags org
// @Security BearerAuth
// @Produce json
// @Success 200 {array} org.Department
// @Router /departments [get]
func (h *OrgHandler) ListDepartments(c *gin.Context) {
	depts, err := h.svc.ListDepartments()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// GetDepartment godoc
// @Summary Get a department with its courses
// @Tags org
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} org.Department
// @Failure 404 {object} response.ErrorResponse
// @Router /departments/{id} [get]
func (h *OrgHandler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	d, err := h.svc.GetDepartment(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateCourse godoc
// @Summary Create a course
// @Description HODs may only create courses in their own department.
// @Tags org
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body org.CreateCourseDTO true "Course"
// @Success 201 {object} org.Course
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Department not found"
// @Router /courses [post]
func (h *OrgHandler) CreateCourse(c *gin.Context) {
	var input org.CreateCourseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	course, err := h.svc.CreateCourse(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ListCourses godoc
// @Summary List courses
// @Tags org
// @Security BearerAuth
// @Produce json
// @Param department_id query int false "Department filter"
// @Success 200 {array} org.Course
// @Router /courses [get]
func (h *OrgHandler) ListCourses(c *gin.Context) {
	deptID, err := utils.ParseOptionalUint(c, "department_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid department_id"})
		return
	}
	courses, err := h.svc.ListCourses(deptID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// UpdateDepartment godoc
// @Summary Update a department
// @Tags org
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param input body org.UpdateDepartmentDTO true "Changes"
// @Success 200 {object} org.Department
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /departments/{id} [put]
func (h *OrgHandler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input org.UpdateDepartmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	d, err := h.svc.UpdateDepartment(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		Action: "update", ResourceType: audit.ResourceDepartment, ResourceID: id,
		After: input, Description: "department updated",
	})
	c.JSON(http.StatusOK, d)
}

// UpdateCourse godoc
// @Summary Update a course
// @Description HODs may only update courses in their own department. A course cannot change department.
// @Tags org
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param input body org.UpdateCourseDTO true "Changes"
// @Success 200 {object} org.Course
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /courses/{id} [put]
func (h *OrgHandler) UpdateCourse(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input org.UpdateCourseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	course, err := h.svc.UpdateCourse(actor, id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		Action: "update", ResourceType: audit.ResourceCourse, ResourceID: id,
		After: input, Description: "course updated",
	})
	c.JSON(http.StatusOK, course)
}
