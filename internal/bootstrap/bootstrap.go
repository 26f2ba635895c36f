package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/grievancehub/internal/app/controllers"
	appMigrations "github.com/emre/grievancehub/internal/app/migrations"
	appRepos "github.com/emre/grievancehub/internal/app/repositories"
	appRoutes "github.com/emre/grievancehub/internal/app/routes"
	"github.com/emre/grievancehub/internal/app/scanner"
	appServices "github.com/emre/grievancehub/internal/app/services"
	"github.com/emre/grievancehub/internal/config"
	"github.com/emre/grievancehub/internal/db"
	appMiddleware "github.com/emre/grievancehub/internal/middleware"
	pkgAuth "github.com/emre/grievancehub/internal/pkg/auth"
	"github.com/emre/grievancehub/internal/pkg/helpers"
	"github.com/emre/grievancehub/internal/pkg/logger"
	"github.com/emre/grievancehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	ScannerManager      *scanner.Manager
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	GrievanceService    *appServices.GrievanceService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	GrievanceController *appControllers.GrievanceController
	StatsController     *appControllers.StatsController
	DashboardController *appControllers.DashboardController
	ScannerController   *appControllers.ScannerController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Seeding is best effort; startup continues
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.ScannerManager = scanner.NewManager()

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.GrievanceService = appServices.NewGrievanceService(
		deps.Repos.GrievanceRepository,
		cfg.Grievances.RecentLimit,
		cfg.WeekStartDay(),
		cfg.Stats.RepeatThreshold,
	)
	deps.DashboardService = appServices.NewDashboardService(deps.GrievanceService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.GrievanceController = appControllers.NewGrievanceController(deps.GrievanceService)
	deps.StatsController = appControllers.NewStatsController(deps.GrievanceService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.ScannerController = appControllers.NewScannerController(deps.ScannerManager, deps.StudentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.GrievanceController,
		deps.StatsController,
		deps.DashboardController,
		deps.ScannerController,
		deps.AuthMiddleware,
	)

	return router
}
