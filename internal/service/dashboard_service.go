package service

import (
	"context"
	"errors"

	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/repository"
)

// Productivity level thresholds for the dashboard forecast.
const (
	levelHighThreshold   = 4
	levelMediumThreshold = 3
)

// Recommendation shown when the live recommender cannot produce one
// (no model loaded, stress model active, or the sweep found nothing).
var placeholderRecommendation = domain.DashboardRecommendation{
	SleepAt: "22:45",
	WakeAt:  "06:30",
}

// DashboardService builds the dashboard summary from the latest record
// and the current recommendation.
type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummaryResponse, error)
}

type dashboardService struct {
	repo        repository.SleepRecordRepository
	recommender RecommendationService
}

func NewDashboardService(repo repository.SleepRecordRepository, recommender RecommendationService) DashboardService {
	return &dashboardService{repo: repo, recommender: recommender}
}

func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummaryResponse, error) {
	summary := &domain.DashboardSummaryResponse{
		Recommendation: s.currentRecommendation(ctx),
	}

	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Empty store is not an error: all slots report N/A.
			summary.Forecast = domain.DashboardForecast{
				Morning:   domain.ForecastSlot{Level: "N/A", Score: 0},
				Afternoon: domain.ForecastSlot{Level: "N/A", Score: 0},
				Night:     domain.ForecastSlot{Level: "N/A", Score: 0},
			}
			return summary, nil
		}
		return nil, err
	}

	summary.Forecast = domain.DashboardForecast{
		Morning:   forecastSlot(latest.ProductivityMorning),
		Afternoon: forecastSlot(latest.ProductivityAfternoon),
		Night:     forecastSlot(latest.ProductivityNight),
	}
	return summary, nil
}

// currentRecommendation asks the recommender for a sleep window and
// falls back to the placeholder on any failure; the dashboard must not
// break because the model is down.
func (s *dashboardService) currentRecommendation(ctx context.Context) domain.DashboardRecommendation {
	rec, err := s.recommender.Recommend(ctx)
	if err != nil || rec.SleepWindow == nil {
		return placeholderRecommendation
	}
	return domain.DashboardRecommendation{
		SleepAt: rec.SleepWindow.SleepAt,
		WakeAt:  rec.SleepWindow.WakeAt,
	}
}

func forecastSlot(score int) domain.ForecastSlot {
	return domain.ForecastSlot{Level: productivityLevel(score), Score: score}
}

func productivityLevel(score int) string {
	switch {
	case score >= levelHighThreshold:
		return "Alta"
	case score >= levelMediumThreshold:
		return "Média"
	default:
		return "Baixa"
	}
}
