package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/evaluations"
	"advisor-backend/internal/reference"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/metrics"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	EvaluationHandler *evaluations.Handler
	ReferenceHandler  *reference.Handler
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(rateLimitConfig(deps)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.EvaluationHandler != nil {
		deps.EvaluationHandler.RegisterRoutes(api)
	}
	if deps.ReferenceHandler != nil {
		deps.ReferenceHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig throttles evaluation creation; reads stay unmetered.
func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		Limiter:      deps.RateLimiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/evaluations" {
				return "EVALUATE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"EVALUATE": {Rate: deps.Config.EvaluateRate, Burst: deps.Config.EvaluateBurst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
