package routes

import (
	"github.com/gin-gonic/gin"

	"gantry/internal/interfaces/http/handlers"
)

// SetupAuthRoutes configures the unauthenticated login endpoint.
func SetupAuthRoutes(engine *gin.Engine, handler *handlers.AuthHandler) {
	engine.POST("/auth/login", handler.Login)
}
