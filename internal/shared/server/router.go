package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/recommend"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/services/health"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/config"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/metrics"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server/middleware"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	CatalogHandler   *catalog.Handler
	RecommendHandler *recommend.Handler
	Health           *health.Service
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
		middleware.APIKey(deps.Config.APIKey, deps.Config.APIKeyRequired),
		middleware.RateLimit(rateLimitConfig(deps.Config)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig derives token-bucket rules from the configured per-minute
// budget. Catalog reads get a higher allowance than the scoring endpoints.
func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 120
	}
	perSecond := float64(perMinute) / 60.0
	burst := perMinute / 4
	if burst < 5 {
		burst = 5
	}

	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return "READ"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: perSecond, Burst: burst},
			"READ":    {Rate: perSecond * 4, Burst: burst * 4},
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
