package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/server"
)

// @title AlumniConnect API
// @version 1.0
// @description Membership directory and AI-assisted career networking backend

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer "

func main() {
	// .env is a development convenience; absence is not an error
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
