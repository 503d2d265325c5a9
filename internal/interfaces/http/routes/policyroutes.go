package routes

import (
	"github.com/gin-gonic/gin"

	"gantry/internal/interfaces/http/handlers"
	"gantry/internal/interfaces/http/middleware"
)

// PolicyRouteConfig holds the configuration for policy routes
type PolicyRouteConfig struct {
	PolicyHandler  *handlers.PolicyHandler
	StatsHandler   *handlers.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPolicyRoutes configures the authenticated admin API: the policy
// document, endpoint rules, user overrides, and the usage stats window.
func SetupPolicyRoutes(engine *gin.Engine, config *PolicyRouteConfig) {
	api := engine.Group("/api")
	api.Use(config.AuthMiddleware.RequireAdmin())
	{
		api.GET("/config", config.PolicyHandler.GetConfig)
		api.POST("/config", config.PolicyHandler.ReplaceConfig)

		api.GET("/endpoints", config.PolicyHandler.ListEndpoints)
		api.POST("/endpoints", config.PolicyHandler.UpsertEndpoint)
		api.DELETE("/endpoints", config.PolicyHandler.DeleteEndpoint)

		api.GET("/users", config.PolicyHandler.ListUserOverrides)
		api.POST("/users", config.PolicyHandler.UpsertUserOverride)
		api.DELETE("/users/:user_id", config.PolicyHandler.DeleteUserOverride)

		api.GET("/stats", config.StatsHandler.GetStats)
	}
}
