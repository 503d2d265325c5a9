package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantry/internal/infrastructure/auth"
	"gantry/internal/shared/constants"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	credentials := auth.NewCredentialVerifier("admin", "admin123", "")
	jwtService := auth.NewJWTService("test-secret", 24)
	handler := NewAuthHandler(credentials, jwtService)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	return router, jwtService
}

func TestAuthHandler_Login(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "bearer", data["token_type"])
	assert.Equal(t, float64(24*3600), data["expires_in"])

	claims, err := jwtService.Verify(data["access_token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
