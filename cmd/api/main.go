package main

import (
	"os"

	"github.com/tekelala/jtbd-interview-agent/internal/api"
	"github.com/tekelala/jtbd-interview-agent/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Wire module services, then start
	api.InitModules(cfg)
	api.Start(cfg)
}
