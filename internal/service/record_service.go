package service

import (
	"context"
	"time"

	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/repository"
	"github.com/somnolog/somnolog/pkg/pagination"
)

// RecordService owns the sleep record lifecycle: create, list, delete.
// Records are never updated in place.
type RecordService interface {
	Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	List(ctx context.Context, page, pageSize int) (*domain.SleepRecordListResponse, error)
	Delete(ctx context.Context, id uint) error
}

type recordService struct {
	repo repository.SleepRecordRepository
	now  func() time.Time
}

func NewRecordService(repo repository.SleepRecordRepository) RecordService {
	return &recordService{repo: repo, now: time.Now}
}

func (s *recordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	start, end, err := req.Interval(s.now())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	record := &domain.SleepRecord{
		StartTime:             start,
		EndTime:               end,
		ProductivityMorning:   req.ProductivityMorning,
		ProductivityAfternoon: req.ProductivityAfternoon,
		ProductivityNight:     req.ProductivityNight,
		Notes:                 req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordService) List(ctx context.Context, page, pageSize int) (*domain.SleepRecordListResponse, error) {
	p := pagination.Normalize(page, pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, p.Offset(), p.Size)
	if err != nil {
		return nil, err
	}

	response := &domain.SleepRecordListResponse{
		Items: make([]domain.SleepRecordResponse, len(records)),
		Total: total,
	}
	for i, record := range records {
		response.Items[i] = record.ToResponse()
	}
	return response, nil
}

func (s *recordService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
