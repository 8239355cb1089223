// Package server exposes selection parsing and normalization over HTTP for
// downstream page-extraction services.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mydehq/pagesel/internal/ui"
)

// Config holds server configuration
type Config struct {
	Addr         string
	MaxBodyBytes int64
	// Locale is used when a request does not name one
	Locale string
}

// New builds a gin engine with the pagesel routes and request logging.
func New(cfg *Config, logger *ui.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	SetupRoutes(r, cfg)
	return r
}

// SetupRoutes registers the health check and selection API on r.
func SetupRoutes(r *gin.Engine, cfg *Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api/v1/selection")
	{
		apiGroup.POST("/parse", func(c *gin.Context) { HandleParse(c, cfg) })
		apiGroup.POST("/normalize", func(c *gin.Context) { HandleNormalize(c, cfg) })
	}
}

func requestLogger(logger *ui.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		logger.Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
