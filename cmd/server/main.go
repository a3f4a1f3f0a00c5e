package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ld-screen/screening-service/internal/cache"
	"github.com/ld-screen/screening-service/internal/config"
	"github.com/ld-screen/screening-service/internal/engine"
	"github.com/ld-screen/screening-service/internal/events"
	"github.com/ld-screen/screening-service/internal/handlers"
	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories/postgres"
	"github.com/ld-screen/screening-service/internal/services"
	"github.com/ld-screen/screening-service/internal/utils"
	"github.com/ld-screen/screening-service/internal/validator"
	"github.com/ld-screen/screening-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogLogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pkg.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Redis is an accelerator, not a dependency. Without it every
	// session load replays from Postgres.
	var sessionCache cache.SessionCache = cache.NoopSessionCache{}
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, session caching disabled", "error", err)
	} else {
		sessionCache = cache.NewRedisSessionCache(redisClient, slogLogger)
		defer redisClient.Close()
		logger.Info("Connected to Redis")
	}

	store := postgres.NewStore(db)
	v := validator.New()
	exportService := services.NewExportService(store, slogLogger)

	templates, err := loadTemplates(cfg, exportService, logger)
	if err != nil {
		logger.Error("Failed to load question templates", "error", err)
		os.Exit(1)
	}
	pool, err := engine.NewPool(templates)
	if err != nil {
		logger.Error("Invalid question template pool", "error", err)
		os.Exit(1)
	}
	logger.Info("Question pool loaded", "templates", pool.Size())

	// Without a trained model the engine scores with its deterministic
	// fallback. A bad model file is also a fallback case, not a crash.
	var scorer engine.Scorer
	if cfg.ModelFile != "" {
		model, err := engine.LoadLinearModel(cfg.ModelFile)
		if err != nil {
			logger.Warn("Failed to load predictive model, using fallback scoring", "file", cfg.ModelFile, "error", err)
		} else {
			scorer = engine.NewModelAdapter(model, cfg.ModelTimeout)
			logger.Info("Predictive model loaded", "file", cfg.ModelFile, "timeout", cfg.ModelTimeout)
		}
	}
	eng := engine.New(pool, scorer, slogLogger)

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Warn("Failed to create event publisher, using mock", "error", err)
		publisher = events.NewMockEventPublisher(slogLogger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	screeningService := services.NewScreeningService(store, sessionCache, eng, publisher, v, slogLogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(screeningService, exportService, v, logger)
	handlerManager.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

// loadTemplates returns the built-in question bank, extended with the
// contents of TEMPLATES_FILE when one is configured.
func loadTemplates(cfg *config.Config, importer services.ExportService, logger utils.Logger) ([]models.QuestionTemplate, error) {
	templates := engine.DefaultTemplates()
	if cfg.TemplatesFile == "" {
		return templates, nil
	}

	f, err := os.Open(cfg.TemplatesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	imported, err := importer.ImportTemplatesFromExcel(f)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded extra question templates", "file", cfg.TemplatesFile, "count", len(imported))
	return append(templates, imported...), nil
}
