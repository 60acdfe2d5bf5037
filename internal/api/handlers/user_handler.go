package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type UserHandler struct {
	svc   *application.UserService
	audit repository.AuditRepo
}

func NewUserHandler(svc *application.UserService, audit repository.AuditRepo) *UserHandler {
	return &UserHandler{svc: svc, audit: audit}
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		writeBindError(c, err)
		return
	}

	usr, token, err := h.svc.Login(input.Username, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	ttl := int(h.svc.TokenTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, ttl, "/", "", config.Environment == "production", true)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:     token,
		UserID:    usr.ID,
		Username:  usr.Username,
		Role:      string(usr.Role),
		ExpiresIn: ttl,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	usr, err := h.svc.FindUserByID(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(usr))
}

// CreateUser godoc
// @Summary Create a user
// @Description Admin only. Role decides which org units are required.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Username taken or principal already exists"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	usr, err := h.svc.CreateUser(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(usr))
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Filter by role"
// @Success 200 {array} user.UserDTO
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var role *user.Role
	if r := user.Role(c.Query("role")); r != "" {
		if !r.IsValid() {
			writeError(c, user.ErrInvalidRole)
			return
		}
		role = &r
	}

	users, err := h.svc.ListUsers(role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTOs(users))
}

func toDTOs(users []user.User) []user.UserDTO {
	out := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToDTO(u))
	}
	return out
}

// Register godoc
// @Summary Student self-registration
// @Description Creates a pending student account. Login is refused until an HOD or principal approves it.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterStudentInput true "Registration"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input or course outside department"
// @Failure 404 {object} response.ErrorResponse "Department or course not found"
// @Failure 409 {object} response.ErrorResponse "Username taken"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	usr, err := h.svc.RegisterStudent(input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		ActorID: usr.ID, Action: "register", ResourceType: audit.ResourceUser, ResourceID: usr.ID,
		After: user.ToDTO(usr), Description: "student registered",
	})
	c.JSON(http.StatusCreated, user.ToDTO(usr))
}

// ListStudents godoc
// @Summary List students by approval status
// @Description Defaults to the pending queue. Tutors only see approved students of their course; HODs see their department.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param approval_status query string false "pending, approved or rejected" default(pending)
// @Success 200 {array} user.UserDTO
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /students [get]
func (h *UserHandler) ListStudents(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	status := user.ApprovalStatus(c.DefaultQuery("approval_status", string(user.ApprovalPending)))

	students, err := h.svc.ListStudents(actor, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTOs(students))
}

// DecideRegistration godoc
// @Summary Approve or reject a student registration
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param input body user.RegistrationDecisionInput true "Decision"
// @Success 200 {object} user.UserDTO
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /students/{id}/approval [put]
func (h *UserHandler) DecideRegistration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input user.RegistrationDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := h.svc.DecideRegistration(actor, id, input.Action == "approve")
	if err != nil {
		writeError(c, err)
		return
	}

	utils.RecordAudit(c, h.audit, audit.Event{
		Action: input.Action, ResourceType: audit.ResourceUser, ResourceID: usr.ID,
		After: gin.H{"approval_status": usr.ApprovalStatus}, Description: "registration " + string(usr.ApprovalStatus),
	})
	c.JSON(http.StatusOK, user.ToDTO(usr))
}

// UpdateUser godoc
// @Summary Update a user
// @Description Admins manage everyone, principals manage HODs, tutors and students, HODs manage tutors and students of their department.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Changes"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	var input user.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}
	h.applyUserUpdate(c, id, "update", func(actor workflow.Actor) (user.User, error) {
		return h.svc.UpdateUser(actor, id, input)
	})
}

// DeactivateUser godoc
// @Summary Deactivate a user
// @Description Blocks further logins. Tokens already issued stay valid until they expire.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.UserDTO
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}
	h.applyUserUpdate(c, id, "deactivate", func(actor workflow.Actor) (user.User, error) {
		return h.svc.DeactivateUser(actor, id)
	})
}

func (h *UserHandler) applyUserUpdate(c *gin.Context, id uint, action string, apply func(workflow.Actor) (user.User, error)) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := apply(actor)
	if err != nil {
		writeError(c, err)
		return
	}

	dto := user.ToDTO(usr)
	utils.RecordAudit(c, h.audit, audit.Event{
		Action: action, ResourceType: audit.ResourceUser, ResourceID: id,
		After: dto, Description: "user " + action + "d",
	})
	c.JSON(http.StatusOK, dto)
}
