package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/auth"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Tracker API
// @version 1.0
// @description API for tracking workout plans, body weight, and exercise progress.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	log.WithFields(log.Fields{
		"address": cfg.Server.Address,
		"driver":  cfg.Database.Driver,
		"export":  cfg.Export.Enabled,
	}).Info("starting fitness tracker server")

	// --- Storage backend ---
	repos, closeDB := openRepositories(cfg.Database)
	defer closeDB()

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, reg)

	// --- Services ---
	services := api.Services{
		WorkoutPlans:     service.NewWorkoutPlanService(repos.WorkoutPlans, repos.Workouts),
		Weeks:            service.NewWeekService(repos.Weeks, repos.DailyWeights),
		Exercises:        service.NewExerciseService(repos.Exercises),
		TrackingPeriods:  service.NewTrackingPeriodService(repos.TrackingPeriods),
		ExerciseLogs:     service.NewExerciseLogService(repos.ExerciseLogs, repos.TrackingPeriods, repos.Exercises),
		TrackedExercises: service.NewTrackedExerciseService(repos.TrackedExercises, repos.TrackingPeriods, repos.Exercises),
		Progress:         service.NewProgressService(repos),
	}

	if cfg.Export.Enabled {
		log.Info("initializing export storage")
		fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
		services.Export = service.NewExportService(repos, fileStorage, metricsManager, cfg.Export.URLExpiry)
	}

	// --- Gin engine & routes ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, api.RouterDeps{
		Resolver: auth.NewTokenResolver(cfg.JWT.Secret, cfg.JWT.Issuer),
		Metrics:  metricsManager,
		Gatherer: reg,
		Services: services,
	})

	// --- HTTP server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}

// openRepositories connects the configured driver. The returned func releases it.
func openRepositories(cfg config.DatabaseConfig) (repository.Repositories, func()) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("using in-memory store, data will not survive a restart")
		return memory.NewRepositories(), func() {}
	}

	dbClient, err := mongo.ConnectDB(cfg.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	appDB := dbClient.Database(cfg.Name)
	log.WithField("database", cfg.Name).Info("database connection established")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
	}()

	return mongo.NewRepositories(appDB), func() {
		log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}
}
