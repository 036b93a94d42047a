// Package bootstrap wires configuration, database, services and routes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/BrandonLMedina/IST-303-TeamJohto/docs" // generated swagger docs
	appControllers "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/controllers"
	appMigrations "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/migrations"
	appRepos "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
	appRoutes "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/routes"
	appServices "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/services"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/config"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/db"
	appMiddleware "github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
	pkgAuth "github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/auth"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/helpers"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/llm"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	AuthService              *appServices.AuthService
	ProfileService           *appServices.ProfileService
	ContactService           *appServices.ContactService
	DirectoryService         *appServices.DirectoryService
	ReferenceService         *appServices.ReferenceService
	RecommendationService    appServices.RecommendationService
	AuthController           *appControllers.AuthController
	ProfileController        *appControllers.ProfileController
	ContactController        *appControllers.ContactController
	DirectoryController      *appControllers.DirectoryController
	ReferenceController      *appControllers.ReferenceController
	RecommendationController *appControllers.RecommendationController
	AuthMiddleware           *appMiddleware.AuthMiddleware
	Repos                    *appRepos.Repositories
	JWTService               *pkgAuth.JWTService
	Logger                   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, applies migrations and seeds default
// reference data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	if cfg.Seed.DataDir != "" {
		if err := seed.ImportMembersFromDir(context.Background(), dbPool, cfg.Seed.DataDir, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to import member rosters, proceeding anyway")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	geminiClient, err := llm.NewGeminiClient(context.Background(), llm.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     helpers.ParseDuration(cfg.LLM.Timeout, 30*time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	authService := appServices.NewAuthService(repos.UserRepository, jwtService)
	profileService := appServices.NewProfileService(
		repos.ProfileRepository, repos.UserRepository,
		repos.IndustryRepository, repos.JobLocationRepository, repos.DegreeRepository)
	contactService := appServices.NewContactService(repos.ContactRepository)
	directoryService := appServices.NewDirectoryService(repos.ProfileRepository)
	referenceService := appServices.NewReferenceService(
		repos.IndustryRepository, repos.JobLocationRepository, repos.DegreeRepository)
	recommendationService := appServices.NewRecommendationService(
		repos.ProfileRepository, repos.IndustryRepository, geminiClient)

	deps := &Dependencies{
		AuthService:              authService,
		ProfileService:           profileService,
		ContactService:           contactService,
		DirectoryService:         directoryService,
		ReferenceService:         referenceService,
		RecommendationService:    recommendationService,
		AuthController:           appControllers.NewAuthController(authService),
		ProfileController:        appControllers.NewProfileController(profileService),
		ContactController:        appControllers.NewContactController(contactService),
		DirectoryController:      appControllers.NewDirectoryController(directoryService),
		ReferenceController:      appControllers.NewReferenceController(referenceService),
		RecommendationController: appControllers.NewRecommendationController(recommendationService),
		AuthMiddleware:           appMiddleware.NewAuthMiddleware(jwtService),
		Repos:                    repos,
		JWTService:               jwtService,
		Logger:                   lgr,
	}

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.ProfileController,
		deps.ContactController,
		deps.DirectoryController,
		deps.ReferenceController,
		deps.RecommendationController,
		deps.AuthMiddleware,
	)

	return router
}

// requestLogger logs each request with latency and status
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
