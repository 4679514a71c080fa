// Package api wires the HTTP surface: routing, middleware, and the server
// lifecycle.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gopress/internal/config"
	"github.com/jonesrussell/gopress/internal/handlers"
	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/metrics"
)

const corsMaxAgeHours = 12

// Handlers groups the handler set the router mounts.
type Handlers struct {
	Articles   *handlers.ArticleHandler
	Tags       *handlers.TagHandler
	Categories *handlers.CategoryHandler
	Health     *handlers.HealthHandler
}

// NewRouter builds the Gin engine with middleware and all routes mounted.
func NewRouter(cfg *config.Config, h Handlers, log logger.Logger) *gin.Engine {
	if cfg.Service.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// CORS middleware - must be first
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"X-CSRF-Token", "Authorization", "accept", "origin",
			"Cache-Control", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeHours * time.Hour,
	}))

	router.Use(ginLogger(log))
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	router.GET("/health", h.Health.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	articles := router.Group("/articles")
	articles.GET("", h.Articles.List)
	articles.POST("", h.Articles.Create)

	// Static routes before the :id parameter so /articles/tags never
	// resolves as an article id.
	articles.GET("/tags", h.Tags.List)
	articles.POST("/tags", h.Tags.Create)

	articles.GET("/:id", h.Articles.GetByID)
	articles.PUT("/:id", h.Articles.Update)
	articles.DELETE("/:id", h.Articles.Delete)

	categories := router.Group("/categories")
	categories.GET("", h.Categories.List)
	categories.POST("", h.Categories.Create)
	categories.GET("/:id", h.Categories.GetByID)

	return router
}

func ginLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		log.Info("HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status_code", statusCode),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("duration", duration),
		)
	}
}
