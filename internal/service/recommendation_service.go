package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/scoring"
)

// Productivity-model sweep ranges: bedtime 21:00 through 01:00 next day
// in 15-minute steps, duration 7 to 9 hours in 15-minute steps. Hours
// above 24 are kept un-normalized for sweeping and wrapped modulo 24
// only when fed to the model.
const (
	sweepStartHourMin  = 21.0
	sweepStartHourMax  = 25.0
	sweepStartHourStep = 0.25
	sweepDurationMin   = 7.0
	sweepDurationMax   = 9.0
	sweepDurationStep  = 0.25
)

// Stress-model sweep ranges and the fixed baseline supplying the
// non-swept features.
const (
	sweepSleepHoursMin  = 6.0
	sweepSleepHoursMax  = 9.0
	sweepSleepHoursStep = 0.5
	sweepQualityMin     = 6.0
	sweepQualityMax     = 10.0
	sweepQualityStep    = 1.0
	sweepActivityMin    = 30.0
	sweepActivityMax    = 90.0
	sweepActivityStep   = 30.0

	baselineHeartRate  = 70
	baselineDailySteps = 8000
	baselineGenderNum  = 1
	baselineAge        = 35
	baselineDisorder   = 0

	// Stress is reported on a 0-10 scale; anything real beats this.
	stressSentinel = 10.0
)

// RecommendationService finds the grid point the model scores best.
type RecommendationService interface {
	// Recommend sweeps the parameter grid for the active model version
	// and returns the winning combination with its score.
	Recommend(ctx context.Context) (*domain.RecommendationResponse, error)
}

type recommendationService struct {
	scorer    scoring.Scorer
	spec      scoring.ModelSpec
	sweepDays bool
	now       func() time.Time
}

// NewRecommendationService creates a RecommendationService. When
// sweepDays is false the day-of-week feature is pinned to the current
// day instead of being swept.
func NewRecommendationService(scorer scoring.Scorer, spec scoring.ModelSpec, sweepDays bool) RecommendationService {
	return &recommendationService{
		scorer:    scorer,
		spec:      spec,
		sweepDays: sweepDays,
		now:       time.Now,
	}
}

func (s *recommendationService) Recommend(ctx context.Context) (*domain.RecommendationResponse, error) {
	if s.scorer == nil {
		return nil, domain.ErrScorerUnavailable
	}

	switch s.spec.Version {
	case scoring.VersionProductivity:
		return s.recommendSleepWindow(ctx)
	case scoring.VersionStress:
		return s.recommendLifestyle(ctx)
	default:
		return nil, fmt.Errorf("no recommendation strategy for model version %q", s.spec.Version)
	}
}

// recommendSleepWindow maximizes predicted morning+afternoon
// productivity over bedtime and duration (and optionally day-of-week).
func (s *recommendationService) recommendSleepWindow(ctx context.Context) (*domain.RecommendationResponse, error) {
	dims := []GridDimension{
		{Name: "startHour", Min: sweepStartHourMin, Max: sweepStartHourMax, Step: sweepStartHourStep},
		{Name: "duration", Min: sweepDurationMin, Max: sweepDurationMax, Step: sweepDurationStep},
	}
	if s.sweepDays {
		dims = append(dims, GridDimension{Name: "dayOfWeek", Min: 0, Max: 6, Step: 1})
	}
	today := float64(domain.InternalWeekday(s.now()))

	score := func(ctx context.Context, point []float64) (float64, bool) {
		startHour, duration := point[0], point[1]
		day := today
		if s.sweepDays {
			day = point[2]
		}

		features := []float32{
			float32(duration),
			float32(math.Mod(startHour, 24)),
			float32(math.Mod(startHour+duration, 24)),
			float32(day),
		}
		out, err := s.scorer.Predict(ctx, features)
		if err != nil || len(out) < 2 {
			return 0, false
		}
		return float64(out[0]) + float64(out[1]), true
	}

	best, bestScore, err := gridSearch(ctx, dims, Maximize, 0, score)
	if err != nil {
		return nil, err
	}

	window := &domain.SleepWindowRecommendation{
		SleepAt:         domain.ClockString(best[0]),
		WakeAt:          domain.ClockString(best[0] + best[1]),
		DurationInHours: domain.RoundScore(best[1]),
		Score:           domain.RoundScore(bestScore),
	}
	if s.sweepDays {
		day := int(best[2])
		window.DayOfWeek = &day
	}

	return &domain.RecommendationResponse{
		ModelVersion: s.spec.Version,
		SleepWindow:  window,
	}, nil
}

// recommendLifestyle minimizes predicted stress over sleep duration,
// sleep quality and physical activity, holding the rest of the feature
// vector at the baseline profile.
func (s *recommendationService) recommendLifestyle(ctx context.Context) (*domain.RecommendationResponse, error) {
	dims := []GridDimension{
		{Name: "sleepDuration", Min: sweepSleepHoursMin, Max: sweepSleepHoursMax, Step: sweepSleepHoursStep},
		{Name: "qualityOfSleep", Min: sweepQualityMin, Max: sweepQualityMax, Step: sweepQualityStep},
		{Name: "physicalActivityLevel", Min: sweepActivityMin, Max: sweepActivityMax, Step: sweepActivityStep},
	}

	score := func(ctx context.Context, point []float64) (float64, bool) {
		features := []float32{
			float32(point[0]),
			float32(point[1]),
			float32(point[2]),
			baselineHeartRate,
			baselineDailySteps,
			baselineGenderNum,
			baselineAge,
			baselineDisorder,
		}
		out, err := s.scorer.Predict(ctx, features)
		if err != nil || len(out) < 1 {
			return 0, false
		}
		return float64(out[0]), true
	}

	best, bestStress, err := gridSearch(ctx, dims, Minimize, stressSentinel, score)
	if err != nil {
		return nil, err
	}

	return &domain.RecommendationResponse{
		ModelVersion: s.spec.Version,
		Lifestyle: &domain.LifestyleRecommendation{
			SleepDuration:         domain.RoundScore(best[0]),
			QualityOfSleep:        domain.RoundScore(best[1]),
			PhysicalActivityLevel: domain.RoundScore(best[2]),
			PredictedStress:       domain.RoundScore(bestStress),
		},
	}, nil
}
