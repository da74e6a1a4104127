// Package bootstrap wires configuration, storage, the catalog, the retrieval
// layer and the HTTP handlers into a runnable router.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/gradplan/internal/app/controllers"
	appMigrations "github.com/yigit/gradplan/internal/app/migrations"
	appRepos "github.com/yigit/gradplan/internal/app/repositories"
	appRoutes "github.com/yigit/gradplan/internal/app/routes"
	appServices "github.com/yigit/gradplan/internal/app/services"
	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/config"
	"github.com/yigit/gradplan/internal/db"
	appMiddleware "github.com/yigit/gradplan/internal/middleware"
	pkgAuth "github.com/yigit/gradplan/internal/pkg/auth"
	"github.com/yigit/gradplan/internal/pkg/helpers"
	"github.com/yigit/gradplan/internal/pkg/logger"
	"github.com/yigit/gradplan/internal/pkg/metrics"
	"github.com/yigit/gradplan/internal/rag"
)

// Dependencies holds every constructed component of the service
type Dependencies struct {
	Catalog         *catalog.Catalog
	Pipeline        *rag.Pipeline
	Metrics         *metrics.Metrics
	Repos           *appRepos.Repositories
	JWTService      *pkgAuth.JWTService
	AuthService     appServices.AuthService
	CatalogService  appServices.CatalogService
	PlanService     appServices.PlanService
	ScheduleService appServices.ScheduleService
	AuthMiddleware  *appMiddleware.AuthMiddleware
	Controllers     appRoutes.Controllers
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger reads configs/config.yaml and configures the
// global logger from it
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	format := strings.ToLower(cfg.Logging.Format)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: format == "text" || format == "pretty",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := appMigrations.NewMigrator(database.Pool, lgr).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database.Pool, nil
}

// LoadCatalog loads the course and major catalogs
func LoadCatalog(cfg *config.Config) *catalog.Catalog {
	return catalog.Load(catalog.CourseSource{Paths: cfg.Catalog.CoursePaths}, logger.Component("catalog"))
}

// NewPipeline creates the retrieval layer. Without credentials, or with the
// LLM disabled, the pipeline settles in the disabled state once initialized.
func NewPipeline(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, observer rag.Observer) *rag.Pipeline {
	lgr := logger.Component("rag")

	var embedder rag.Embedder
	var generator rag.Generator
	if cfg.LLM.Enabled {
		client, err := rag.NewGeminiClient(ctx, rag.GeminiConfig{
			APIKey:          cfg.LLM.APIKey,
			GenerationModel: cfg.LLM.GenerationModel,
			EmbeddingModel:  cfg.LLM.EmbeddingModel,
			Temperature:     float32(cfg.LLM.Temperature),
		})
		if err != nil {
			lgr.Warn().Err(err).Msg("Gemini client unavailable")
		} else {
			embedder, generator = client, client
		}
	}

	return rag.NewPipeline(cat, embedder, generator, rag.Options{
		RetrievalK:     cfg.LLM.RetrievalK,
		RequestTimeout: helpers.ParseDuration(cfg.LLM.RequestTimeout, time.Minute),
		Observer:       observer,
	}, lgr)
}

// BuildDependencies constructs repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, cat *catalog.Catalog, pipeline *rag.Pipeline, m *metrics.Metrics, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Catalog:  cat,
		Pipeline: pipeline,
		Metrics:  m,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	var planObserver appServices.PlanObserver
	if m != nil {
		planObserver = m
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService, logger.Component("auth"))
	deps.CatalogService = appServices.NewCatalogService(cat, pipeline)
	deps.PlanService = appServices.NewPlanService(cat, pipeline, planObserver, logger.Component("plans"))
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository, logger.Component("schedules"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService, lgr),
		User:     appControllers.NewUserController(deps.AuthService),
		Catalog:  appControllers.NewCatalogController(deps.CatalogService, lgr),
		Plan:     appControllers.NewPlanController(deps.PlanService, deps.CatalogService, lgr),
		Schedule: appControllers.NewScheduleController(deps.ScheduleService, lgr),
	}
	return deps
}

// SetupRouter builds the gin engine with middleware, API routes, swagger,
// metrics and the ping endpoint
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.Component("http")))
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
