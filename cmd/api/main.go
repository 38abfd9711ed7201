// Somnolog API
//
// REST API for tracking sleep sessions and recommending sleep timing.
//
//	@title			Somnolog API
//	@version		1.0
//	@description	Track sleep sessions with productivity ratings and get model-backed sleep recommendations.
//
//	@BasePath	/api
//
//	@tag.name			records
//	@tag.description	Sleep record endpoints
//
//	@tag.name			predictions
//	@tag.description	Model-backed prediction, simulation and recommendation endpoints
//
//	@tag.name			dashboard
//	@tag.description	Dashboard summary endpoint
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/somnolog/somnolog/internal/api"
	"github.com/somnolog/somnolog/internal/api/handler"
	"github.com/somnolog/somnolog/internal/config"
	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/llm"
	"github.com/somnolog/somnolog/internal/repository"
	"github.com/somnolog/somnolog/internal/scoring"
	"github.com/somnolog/somnolog/internal/seed"
	"github.com/somnolog/somnolog/internal/service"
	"github.com/somnolog/somnolog/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// Telemetry (no-op when unconfigured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "somnolog-api")
	if err != nil {
		logger.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer shutdownTracer(context.Background())

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SleepRecord{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Load the scoring model; the server still runs without it, with
	// scoring endpoints reporting unavailable.
	modelSpec, err := scoring.SpecFor(cfg.ModelVersion, cfg.ModelPath)
	if err != nil {
		logger.Fatal("invalid model configuration", zap.Error(err))
	}
	var scorer scoring.Scorer
	if s, err := scoring.NewONNXScorer(modelSpec); err != nil {
		logger.Warn("scoring model not loaded, prediction endpoints will be unavailable",
			zap.String("model_path", modelSpec.Path), zap.Error(err))
	} else {
		scorer = s
		defer s.Close()
		logger.Info("scoring model loaded",
			zap.String("version", modelSpec.Version),
			zap.String("model_path", modelSpec.Path))
	}

	// Initialize repositories
	recordRepo := repository.NewSleepRecordRepository(db)

	// Initialize services
	recordService := service.NewRecordService(recordRepo)
	recommendationService := service.NewRecommendationService(scorer, modelSpec, cfg.RecommendSweepDays)
	predictionService := service.NewPredictionService(scorer, modelSpec)
	dashboardService := service.NewDashboardService(recordRepo, recommendationService)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(recordRepo, recommendationService, openaiClient)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	predictionHandler := handler.NewPredictionHandler(predictionService, recommendationService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(logger, recordHandler, dashboardHandler, predictionHandler, insightsHandler)

	// Timeouts bound the worst case of the recommendation sweep
	// (grid size x model-call latency).
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.Setup(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
