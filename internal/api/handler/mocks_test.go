package handler

import (
	"context"
	"time"

	"github.com/somnolog/somnolog/internal/domain"
)

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	createFunc func(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	listFunc   func(ctx context.Context, page, pageSize int) (*domain.SleepRecordListResponse, error)
	deleteFunc func(ctx context.Context, id uint) error
}

func (m *MockRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.SleepRecord{
		ID:                    1,
		StartTime:             time.Date(2024, 3, 11, 23, 15, 0, 0, time.UTC),
		EndTime:               time.Date(2024, 3, 12, 7, 0, 0, 0, time.UTC),
		ProductivityMorning:   req.ProductivityMorning,
		ProductivityAfternoon: req.ProductivityAfternoon,
		ProductivityNight:     req.ProductivityNight,
		Notes:                 req.Notes,
	}, nil
}

func (m *MockRecordService) List(ctx context.Context, page, pageSize int) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, pageSize)
	}
	return &domain.SleepRecordListResponse{Items: []domain.SleepRecordResponse{}, Total: 0}, nil
}

func (m *MockRecordService) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	predictFunc  func(ctx context.Context, req *domain.PredictRequest) (*domain.PredictionResponse, error)
	simulateFunc func(ctx context.Context, req *domain.SimulateRequest) (*domain.SimulationResponse, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, req *domain.PredictRequest) (*domain.PredictionResponse, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, req)
	}
	morning, afternoon, night := 4.2, 3.8, 2.9
	return &domain.PredictionResponse{
		ModelVersion:          "v1",
		ProductivityMorning:   &morning,
		ProductivityAfternoon: &afternoon,
		ProductivityNight:     &night,
	}, nil
}

func (m *MockPredictionService) Simulate(ctx context.Context, req *domain.SimulateRequest) (*domain.SimulationResponse, error) {
	if m.simulateFunc != nil {
		return m.simulateFunc(ctx, req)
	}
	total := 8.0
	return &domain.SimulationResponse{
		PredictionResponse: domain.PredictionResponse{ModelVersion: "v1"},
		TotalScore:         &total,
	}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context) (*domain.RecommendationResponse, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx)
	}
	return &domain.RecommendationResponse{
		ModelVersion: "v1",
		SleepWindow: &domain.SleepWindowRecommendation{
			SleepAt:         "22:45",
			WakeAt:          "06:30",
			DurationInHours: 7.8,
			Score:           8.4,
		},
	}, nil
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	summaryFunc func(ctx context.Context) (*domain.DashboardSummaryResponse, error)
}

func (m *MockDashboardService) Summary(ctx context.Context) (*domain.DashboardSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx)
	}
	return &domain.DashboardSummaryResponse{
		Forecast: domain.DashboardForecast{
			Morning:   domain.ForecastSlot{Level: "Alta", Score: 4},
			Afternoon: domain.ForecastSlot{Level: "Média", Score: 3},
			Night:     domain.ForecastSlot{Level: "Baixa", Score: 2},
		},
		Recommendation: domain.DashboardRecommendation{SleepAt: "22:45", WakeAt: "06:30"},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.InsightsResponse{Summary: "ok"}, nil
}
