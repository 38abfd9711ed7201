package service

import (
	"context"
	"time"

	"github.com/somnolog/somnolog/internal/domain"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records []domain.SleepRecord
	nextID  uint
	err     error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{nextID: 1}
}

func (m *MockSleepRecordRepository) SetError(err error) {
	m.err = err
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	record.ID = m.nextID
	m.nextID++
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	for i, record := range m.records {
		if record.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// sorted returns records newest first, matching the repository's
// start_time DESC ordering.
func (m *MockSleepRecordRepository) sorted() []domain.SleepRecord {
	result := make([]domain.SleepRecord, len(m.records))
	copy(result, m.records)
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].StartTime.After(result[i].StartTime) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result
}

func (m *MockSleepRecordRepository) List(ctx context.Context, offset, limit int) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := m.sorted()
	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (m *MockSleepRecordRepository) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.records)), nil
}

func (m *MockSleepRecordRepository) Latest(ctx context.Context) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := m.sorted()
	if len(sorted) == 0 {
		return nil, domain.ErrNotFound
	}
	return &sorted[0], nil
}

func (m *MockSleepRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.SleepRecord, error) {
	return m.List(ctx, 0, limit)
}

// scorerFunc adapts a plain function into a scoring.Scorer for tests.
type scorerFunc func(features []float32) ([]float32, error)

func (f scorerFunc) Predict(ctx context.Context, features []float32) ([]float32, error) {
	return f(features)
}

func (f scorerFunc) Close() error {
	return nil
}

// stubRecommender returns a canned recommendation or error.
type stubRecommender struct {
	resp *domain.RecommendationResponse
	err  error
}

func (s *stubRecommender) Recommend(ctx context.Context) (*domain.RecommendationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

// Helper functions
func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
