package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/config"
	"resume-builder/internal/generation"
	"resume-builder/internal/health"
	"resume-builder/internal/records"
	"resume-builder/internal/server/middleware"
)

// RouterDeps lists the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	GenerationHandler *generation.Handler
	RecordsHandler    *records.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status())
	})
	deps.GenerationHandler.RegisterRoutes(api)
	deps.RecordsHandler.RegisterRoutes(api)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
