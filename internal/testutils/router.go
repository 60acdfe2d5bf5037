package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/api/routes"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/repository"
	"github.com/linskybing/request-portal/pkg/storage"
)

// SetupRouter wires the full route table over repos in gin test mode.
func SetupRouter(repos *repository.Repos, store storage.ObjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, repos, application.New(repos, store))
	return r
}
