package interview

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tekelala/jtbd-interview-agent/pkg/sdk"
	"github.com/tekelala/jtbd-interview-agent/pkg/utils"
)

// Register routes for the interview module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// When API_KEY is set, every interview route requires it. An unset key
	// leaves the API open for local use.
	group := g.Group("/interviews")
	if apiKey := cfg.Get("API_KEY"); apiKey != "" {
		group.Use(apiKeyHandler(apiKey))
	}

	// Live session routes
	group.POST("", StartInterview)          // Create a new interview session
	group.POST("/:id/message", PostMessage) // Send an interviewee answer
	group.PUT("/:id/phase", SetPhase)       // Move the session to a new phase
	group.GET("/:id/data", GetData)         // Get the session's structured data
	group.GET("/:id/export", ExportData)    // Export the session's raw JSON
	group.POST("/:id/end", EndInterview)    // Finalize and persist the session

	// Stored interview routes
	group.GET("", ListInterviews)         // List stored interviews
	group.GET("/:id", GetInterview)       // Get a stored interview by ID
	group.DELETE("/:id", DeleteInterview) // Delete a stored interview by ID
	group.GET("/:id/report", GetReport)   // Render a stored interview's report

	// Model catalog (no key required; it exposes nothing sensitive)
	g.GET("/models", GetModels)
}

// apiKeyHandler rejects requests whose X-API-KEY header does not match
func apiKeyHandler(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-KEY") != apiKey {
			c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Invalid API key", nil).AsGinResponse())
			return
		}
		c.Next()
	}
}
