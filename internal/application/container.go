package application

import (
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/storage"
)

type Services struct {
	Audit      *AuditService
	User       *UserService
	Org        *OrgService
	Form       *FormService
	Submission *SubmissionService
	Attachment *AttachmentService
}

// New wires every service. store may be nil when object storage is not
// configured; attachment operations then fail with ErrStorageUnavailable.
func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	return &Services{
		Audit:      NewAuditService(repos),
		User:       NewUserService(repos),
		Org:        NewOrgService(repos),
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos, store),
		Attachment: NewAttachmentService(store),
	}
}
