package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/types"
	"github.com/linskybing/request-portal/pkg/utils"
)

// ActorFromClaims maps token claims onto the workflow actor.
func ActorFromClaims(claims *types.Claims) workflow.Actor {
	u := user.User{
		ID:           claims.UserID,
		Role:         user.Role(claims.Role),
		CourseID:     claims.CourseID,
		DepartmentID: claims.DepartmentID,
	}
	return workflow.ActorFor(u)
}

// ActorFromContext reads the actor of an authenticated request.
func ActorFromContext(c *gin.Context) (workflow.Actor, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		return workflow.Actor{}, false
	}
	return ActorFromClaims(claims), true
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}

	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !allowed[user.Role(claims.Role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{
				Error: "requires role " + strings.Join(names, " or "),
				Code:  "forbidden_role",
			})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the configured origin prefixes.
func CORSMiddleware() gin.HandlerFunc {
	origins := config.AllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, prefix := range origins {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
