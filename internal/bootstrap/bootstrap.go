package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseplanner/internal/app/controllers"
	appRoutes "github.com/yigit/courseplanner/internal/app/routes"
	appServices "github.com/yigit/courseplanner/internal/app/services"
	"github.com/yigit/courseplanner/internal/config"
	appMiddleware "github.com/yigit/courseplanner/internal/middleware"
	"github.com/yigit/courseplanner/internal/pkg/logger"
	"github.com/yigit/courseplanner/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    *appServices.CourseService
	CourseController *appControllers.CourseController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Logs are written to logOutput.
func LoadConfigAndSetupLogger(configPath string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	return cfg, SetupLogger(cfg, logOutput), nil
}

// SetupLogger configures the global logger from cfg
func SetupLogger(cfg *config.Config, logOutput io.Writer) zerolog.Logger {
	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format, logOutput))
	lgr.Debug().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Uint("tableSize", cfg.Table.Size).
		Str("coursesFile", cfg.Data.CoursesFile).
		Msg("Logger configured")
	return lgr
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.CourseService, err = appServices.NewCourseService(cfg.Table.Size, cfg.Data.CoursesFile, lgr)
	if err != nil {
		lgr.Error().Err(err).Uint("tableSize", cfg.Table.Size).Msg("Failed to create course table")
		return nil, fmt.Errorf("failed to create course service: %w", err)
	}

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// LoadInitialData loads the courses file when the configuration asks for it
func LoadInitialData(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if !cfg.Data.LoadOnStart {
		deps.Logger.Info().Msg("Skipping initial course load")
		return nil
	}
	return seed.LoadDefaultCourses(ctx, deps.CourseService, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	// Route on the escaped path so codes holding "/" can be requested as %2F
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.CourseController)

	return router
}
