package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/tekelala/jtbd-interview-agent/internal/api/modules/health"
	interview_module "github.com/tekelala/jtbd-interview-agent/internal/api/modules/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/sdk"
	"github.com/tekelala/jtbd-interview-agent/pkg/utils"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	engine := NewEngine(cfg)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// NewEngine builds the configured gin engine without starting it. Split
// from Start so tests can serve it with httptest.
func NewEngine(cfg *utils.Config) *gin.Engine {
	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(noRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	interview_module.RegisterRoutes(baseGroup, cfg)
	health_module.RegisterRoutes(baseGroup)

	return engine
}

// InitModules wires every module's backing services from configuration
func InitModules(cfg *utils.Config) {
	interview_module.Init(cfg)
	health_module.Init(interview_module.GetService().Registry.Len)
}

// noRouteHandler answers unknown paths with the standard error envelope
func noRouteHandler(c *gin.Context) {
	c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
}
