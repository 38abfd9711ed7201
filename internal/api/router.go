package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/somnolog/somnolog/docs"
	"github.com/somnolog/somnolog/internal/api/handler"
	"github.com/somnolog/somnolog/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	logger            *zap.Logger
	recordHandler     *handler.RecordHandler
	dashboardHandler  *handler.DashboardHandler
	predictionHandler *handler.PredictionHandler
	insightsHandler   *handler.InsightsHandler
}

func NewRouter(
	logger *zap.Logger,
	recordHandler *handler.RecordHandler,
	dashboardHandler *handler.DashboardHandler,
	predictionHandler *handler.PredictionHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		logger:            logger,
		recordHandler:     recordHandler,
		dashboardHandler:  dashboardHandler,
		predictionHandler: predictionHandler,
		insightsHandler:   insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", rt.recordHandler.List)
			r.Post("/", rt.recordHandler.Create)
			r.Delete("/{id}", rt.recordHandler.Delete)
		})

		r.Get("/dashboard/summary", rt.dashboardHandler.Summary)

		r.Post("/predict", rt.predictionHandler.Predict)
		r.Post("/simulate", rt.predictionHandler.Simulate)
		r.Get("/recommendation", rt.predictionHandler.Recommend)

		r.Get("/insights", rt.insightsHandler.Get)
	})

	return r
}
