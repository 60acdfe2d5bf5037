package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/user"
	"github.com/linskybing/request-portal/internal/workflow"
	"github.com/linskybing/request-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.Issuer = "request-portal-test"
	Init()
}

func ptrUint(v uint) *uint { return &v }

func TestTokenRoundTrip(t *testing.T) {
	u := user.User{ID: 7, Username: "tutor1", Role: user.RoleTutor, DepartmentID: ptrUint(1), CourseID: ptrUint(10)}

	token, err := GenerateToken(u, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "tutor", claims.Role)
	require.NotNil(t, claims.CourseID)
	assert.Equal(t, uint(10), *claims.CourseID)

	actor := ActorFromClaims(claims)
	assert.Equal(t, workflow.Actor{ID: 7, Role: user.RoleTutor, OrgUnitID: 10, DepartmentID: 1}, actor)
}

func TestParseToken_Rejects(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	expired, err := GenerateToken(user.User{ID: 1, Role: user.RoleStudent}, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.Claims{UserID: 1, Role: "admin"})
	forged, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = ParseToken(forged)
	assert.Error(t, err)
}

func TestActorFromClaims_HOD(t *testing.T) {
	actor := ActorFromClaims(&types.Claims{UserID: 3, Role: "hod", DepartmentID: ptrUint(2)})
	assert.Equal(t, uint(2), actor.OrgUnitID)
	assert.Equal(t, uint(2), actor.DepartmentID)

	actor = ActorFromClaims(&types.Claims{UserID: 4, Role: "principal"})
	assert.Zero(t, actor.OrgUnitID)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(JWTAuthMiddleware())
	r.GET("/reviews", RequireRoles(user.RoleTutor, user.RoleHOD), func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	tutorToken, err := GenerateToken(user.User{ID: 5, Role: user.RoleTutor, DepartmentID: ptrUint(1), CourseID: ptrUint(10)}, time.Hour)
	require.NoError(t, err)
	studentToken, err := GenerateToken(user.User{ID: 6, Role: user.RoleStudent}, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"malformed header", "Token " + tutorToken, "", http.StatusUnauthorized},
		{"bearer tutor", "Bearer " + tutorToken, "", http.StatusOK},
		{"cookie tutor", "", tutorToken, http.StatusOK},
		{"student forbidden", "Bearer " + studentToken, "", http.StatusForbidden},
		{"garbage token", "Bearer abc.def.ghi", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "forbidden_role")
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(LoggingMiddleware(logger), RecoveryMiddleware(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestCORSMiddleware(t *testing.T) {
	old := config.AllowedOrigins
	config.AllowedOrigins = []string{"http://localhost:"}
	t.Cleanup(func() { config.AllowedOrigins = old })

	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
