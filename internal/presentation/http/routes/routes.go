package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitsphere-automation/LD-InvGen/internal/config"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/dto/response"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/handler"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session *handler.SessionHandler
	Export  *handler.ExportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerSessionRoutes(v1, h)
	}

	return router
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/sessions")
	{
		sessions.GET("", h.Session.List)
		sessions.POST("", h.Session.Create)
		sessions.GET("/:id", h.Session.Get)
		sessions.PATCH("/:id", h.Session.Update)
		sessions.DELETE("/:id", h.Session.Delete)

		sessions.POST("/:id/items", h.Session.AddItem)
		sessions.DELETE("/:id/items/:index", h.Session.RemoveItem)

		sessions.GET("/:id/preview", h.Export.Preview)
		sessions.GET("/:id/export", h.Export.Export)
	}
}
