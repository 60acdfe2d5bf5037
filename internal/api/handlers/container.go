package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/repository"
)

type Handlers struct {
	Audit      *AuditHandler
	User       *UserHandler
	Org        *OrgHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Attachment *AttachmentHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		Audit:      NewAuditHandler(svc.Audit),
		User:       NewUserHandler(svc.User, repos.Audit),
		Org:        NewOrgHandler(svc.Org, repos.Audit),
		Form:       NewFormHandler(svc.Form, repos.Audit),
		Submission: NewSubmissionHandler(svc.Submission, repos.Audit),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Router:     router,
	}
}
