package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/handlers"
	"github.com/linskybing/request-portal/internal/api/middleware"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/request-portal/docs"
)

const (
	student   = user.RoleStudent
	tutor     = user.RoleTutor
	hod       = user.RoleHOD
	principal = user.RolePrincipal
	admin     = user.RoleAdmin
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services) *handlers.Handlers {
	h := handlers.New(svc, repos, r)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.POST("/register", h.User.Register)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)

		users := auth.Group("/users", middleware.RequireRoles(admin))
		{
			users.POST("", h.User.CreateUser)
			users.GET("", h.User.ListUsers)
		}
		auth.PUT("/users/:id", middleware.RequireRoles(admin, principal, hod), h.User.UpdateUser)
		auth.POST("/users/:id/deactivate", middleware.RequireRoles(admin, principal, hod), h.User.DeactivateUser)

		students := auth.Group("/students")
		{
			students.GET("", middleware.RequireRoles(tutor, hod, principal, admin), h.User.ListStudents)
			students.PUT("/:id/approval", middleware.RequireRoles(hod, principal, admin), h.User.DecideRegistration)
		}

		depts := auth.Group("/departments")
		{
			depts.GET("", h.Org.ListDepartments)
			depts.GET("/:id", h.Org.GetDepartment)
			depts.POST("", middleware.RequireRoles(admin, principal), h.Org.CreateDepartment)
			depts.PUT("/:id", middleware.RequireRoles(admin, principal), h.Org.UpdateDepartment)
		}

		courses := auth.Group("/courses")
		{
			courses.GET("", h.Org.ListCourses)
			courses.POST("", middleware.RequireRoles(admin, principal, hod), h.Org.CreateCourse)
			courses.PUT("/:id", middleware.RequireRoles(admin, principal, hod), h.Org.UpdateCourse)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.GET("/:id", h.Form.GetForm)
			forms.POST("", middleware.RequireRoles(admin, principal, hod), h.Form.CreateForm)
			forms.PUT("/:id", middleware.RequireRoles(admin, principal, hod), h.Form.UpdateForm)
			forms.POST("/:id/deactivate", middleware.RequireRoles(admin, principal, hod), h.Form.DeactivateForm)
			forms.POST("/:id/activate", middleware.RequireRoles(admin, principal, hod), h.Form.ActivateForm)
			forms.POST("/:id/submissions", middleware.RequireRoles(student), h.Submission.CreateSubmission)
		}

		auth.POST("/attachments", middleware.RequireRoles(student), h.Attachment.Upload)

		subs := auth.Group("/submissions")
		{
			subs.GET("", h.Submission.ListSubmissions)
			subs.GET("/my", middleware.RequireRoles(student), h.Submission.ListMySubmissions)
			subs.GET("/pending", middleware.RequireRoles(tutor, hod, principal), h.Submission.ListPending)
			subs.GET("/:id", h.Submission.GetSubmission)
			subs.PUT("/:id/review", middleware.RequireRoles(tutor, hod, principal), h.Submission.ReviewSubmission)
			subs.GET("/:id/slip", h.Submission.GetSlip)
			subs.GET("/:id/history", h.Audit.SubmissionHistory)
			subs.GET("/:id/attachments/:field", h.Submission.GetAttachment)
		}

		auditLogs := auth.Group("/audit", middleware.RequireRoles(admin))
		{
			auditLogs.GET("/logs", h.Audit.GetAuditLogs)
			auditLogs.DELETE("/logs", h.Audit.CleanupAuditLogs)
		}
	}

	return h
}
