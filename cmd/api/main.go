package main

import (
	"os"

	"github.com/yigit/gradplan/internal/pkg/logger"
	"github.com/yigit/gradplan/internal/server"
)

// @title Berkeley Four Year Plan Generator API
// @version 1.0
// @description Generates UC Berkeley four-year course plans from major requirements, with AI generation grounded on the course catalog and a deterministic fallback.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
