package service

import (
	"context"

	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/llm"
	"github.com/somnolog/somnolog/internal/repository"
)

// InsightsWindowRecords is how many recent records the LLM sees.
const InsightsWindowRecords = 14

// InsightsService generates an LLM-written habits summary from recent
// records and the current recommendation.
type InsightsService interface {
	Generate(ctx context.Context) (*domain.InsightsResponse, error)
}

type insightsService struct {
	repo        repository.SleepRecordRepository
	recommender RecommendationService
	llmClient   llm.InsightsLLM
}

func NewInsightsService(repo repository.SleepRecordRepository, recommender RecommendationService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		repo:        repo,
		recommender: recommender,
		llmClient:   llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	records, err := s.repo.ListRecent(ctx, InsightsWindowRecords)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Records: make([]domain.SleepRecordSummary, len(records)),
	}
	for i, record := range records {
		insightsCtx.Records[i] = domain.SleepRecordSummary{
			Date:                  record.StartTime.Format("2006-01-02"),
			DurationInHours:       domain.RoundScore(record.DurationInHours()),
			ProductivityMorning:   record.ProductivityMorning,
			ProductivityAfternoon: record.ProductivityAfternoon,
			ProductivityNight:     record.ProductivityNight,
			Notes:                 record.Notes,
		}
	}

	// The recommendation is best-effort context; insights still work
	// when the model is down.
	if rec, err := s.recommender.Recommend(ctx); err == nil {
		insightsCtx.Recommendation = rec.SleepWindow
	}

	return s.llmClient.GenerateInsights(ctx, insightsCtx)
}
