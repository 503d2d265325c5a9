package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantry/internal/infrastructure/auth"
	"gantry/internal/shared/constants"
	"gantry/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupProtectedRouter(jwtService *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(jwtService, &nopLogger{})

	router := gin.New()
	router.GET("/protected", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(constants.ContextKeyUsername)})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	router := setupProtectedRouter(jwtService)

	token, _, err := jwtService.Generate("admin", constants.RoleAdmin)
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(auth.NewJWTService("test-secret", 1))

	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	router := setupProtectedRouter(auth.NewJWTService("test-secret", 1))

	w := request(router, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_WrongSecret(t *testing.T) {
	router := setupProtectedRouter(auth.NewJWTService("test-secret", 1))

	other := auth.NewJWTService("other-secret", 1)
	token, _, err := other.Generate("admin", constants.RoleAdmin)
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 1)
	router := setupProtectedRouter(jwtService)

	token, _, err := jwtService.Generate("viewer", "viewer")
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
