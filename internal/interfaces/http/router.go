// Package http wires the gin engine: infrastructure adapters, use cases,
// handlers, middleware, and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"gantry/internal/application/ratelimit/usecases"
	"gantry/internal/infrastructure/auth"
	"gantry/internal/infrastructure/config"
	"gantry/internal/infrastructure/pubsub"
	"gantry/internal/infrastructure/store"
	"gantry/internal/interfaces/http/handlers"
	"gantry/internal/interfaces/http/middleware"
	"gantry/internal/interfaces/http/routes"
	"gantry/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	redis  *redis.Client
	logger logger.Interface
}

func NewRouter(cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine: engine,
		cfg:    cfg,
		redis:  redisClient,
		logger: log,
	}
}

// SetupRoutes builds the dependency graph and registers all routes.
func (r *Router) SetupRoutes() {
	// Infrastructure adapters
	policyStore := store.NewRedisPolicyStore(r.redis, r.logger.Named("policy-store"))
	statsReader := store.NewRedisStatsReader(r.redis)
	notifier := pubsub.NewRedisConfigNotifier(r.redis, r.logger.Named("config-notifier"))

	jwtService := auth.NewJWTService(r.cfg.Auth.JWT.Secret, r.cfg.Auth.JWT.AccessExpHours)
	credentials := auth.NewCredentialVerifier(
		r.cfg.Auth.Admin.Username,
		r.cfg.Auth.Admin.Password,
		r.cfg.Auth.Admin.PasswordHash,
	)

	// Use cases
	ucLogger := r.logger.Named("usecase")
	getPolicyUC := usecases.NewGetPolicyUseCase(policyStore)
	replacePolicyUC := usecases.NewReplacePolicyUseCase(policyStore, notifier, ucLogger)
	upsertEndpointUC := usecases.NewUpsertEndpointRuleUseCase(policyStore, notifier, ucLogger)
	deleteEndpointUC := usecases.NewDeleteEndpointRuleUseCase(policyStore, notifier, ucLogger)
	upsertOverrideUC := usecases.NewUpsertUserOverrideUseCase(policyStore, notifier, ucLogger)
	deleteOverrideUC := usecases.NewDeleteUserOverrideUseCase(policyStore, notifier, ucLogger)
	statsWindowUC := usecases.NewGetStatsWindowUseCase(
		statsReader,
		r.cfg.Stats.DefaultWindowMinutes,
		r.cfg.Stats.MaxWindowMinutes,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(credentials, jwtService)
	policyHandler := handlers.NewPolicyHandler(
		getPolicyUC,
		replacePolicyUC,
		upsertEndpointUC,
		deleteEndpointUC,
		upsertOverrideUC,
		deleteOverrideUC,
	)
	statsHandler := handlers.NewStatsHandler(statsWindowUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, r.logger.Named("auth"))

	// Routes
	r.engine.GET("/health", handlers.Health)
	routes.SetupAuthRoutes(r.engine, authHandler)
	routes.SetupPolicyRoutes(r.engine, &routes.PolicyRouteConfig{
		PolicyHandler:  policyHandler,
		StatsHandler:   statsHandler,
		AuthMiddleware: authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
