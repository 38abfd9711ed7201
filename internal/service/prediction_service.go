package service

import (
	"context"
	"fmt"

	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/scoring"
)

// Defaults used by the stress model when a simulation or prediction
// does not supply the corresponding feature.
const (
	baselineQualityOfSleep = 7
	baselineActivityLevel  = 60
)

// PredictionService maps concrete inputs onto the active model's
// feature ordering and invokes the scoring function once.
type PredictionService interface {
	// Predict scores one stored-or-candidate sleep interval.
	Predict(ctx context.Context, req *domain.PredictRequest) (*domain.PredictionResponse, error)
	// Simulate scores one fully specified what-if feature set.
	Simulate(ctx context.Context, req *domain.SimulateRequest) (*domain.SimulationResponse, error)
}

type predictionService struct {
	scorer scoring.Scorer
	spec   scoring.ModelSpec
}

func NewPredictionService(scorer scoring.Scorer, spec scoring.ModelSpec) PredictionService {
	return &predictionService{scorer: scorer, spec: spec}
}

func (s *predictionService) Predict(ctx context.Context, req *domain.PredictRequest) (*domain.PredictionResponse, error) {
	if s.scorer == nil {
		return nil, domain.ErrScorerUnavailable
	}

	// Duration and hour-of-day floats come from the timestamps, never
	// from a stored duration field.
	duration := req.EndTime.Sub(req.StartTime).Hours()
	startHour := domain.HourOfDay(req.StartTime)
	endHour := domain.HourOfDay(req.EndTime)
	day := domain.InternalWeekday(req.StartTime)

	var features []float32
	switch s.spec.Version {
	case scoring.VersionProductivity:
		features = []float32{
			float32(duration),
			float32(startHour),
			float32(endHour),
			float32(day),
		}
	case scoring.VersionStress:
		features = stressFeatures(duration, baselineQualityOfSleep, baselineActivityLevel,
			baselineHeartRate, baselineDailySteps, baselineGenderNum, baselineAge, baselineDisorder)
	default:
		return nil, fmt.Errorf("no feature mapping for model version %q", s.spec.Version)
	}

	out, err := s.scorer.Predict(ctx, features)
	if err != nil {
		return nil, err
	}
	return s.labelOutput(out)
}

func (s *predictionService) Simulate(ctx context.Context, req *domain.SimulateRequest) (*domain.SimulationResponse, error) {
	if s.scorer == nil {
		return nil, domain.ErrScorerUnavailable
	}

	var features []float32
	switch s.spec.Version {
	case scoring.VersionProductivity:
		if req.StartHour == nil || req.EndHour == nil || req.DayOfWeek == nil {
			return nil, domain.ErrInvalidInput
		}
		duration := domain.WrapDuration(*req.StartHour, *req.EndHour)
		features = []float32{
			float32(duration),
			float32(*req.StartHour),
			float32(*req.EndHour),
			float32(*req.DayOfWeek),
		}
	case scoring.VersionStress:
		if req.SleepDuration == nil {
			return nil, domain.ErrInvalidInput
		}
		features = stressFeatures(
			*req.SleepDuration,
			orDefault(req.QualityOfSleep, baselineQualityOfSleep),
			orDefault(req.PhysicalActivityLevel, baselineActivityLevel),
			orDefault(req.HeartRate, baselineHeartRate),
			orDefault(req.DailySteps, baselineDailySteps),
			orDefault(req.GenderNum, baselineGenderNum),
			orDefault(req.Age, baselineAge),
			orDefault(req.DisorderNum, baselineDisorder),
		)
	default:
		return nil, fmt.Errorf("no feature mapping for model version %q", s.spec.Version)
	}

	out, err := s.scorer.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	prediction, err := s.labelOutput(out)
	if err != nil {
		return nil, err
	}

	resp := &domain.SimulationResponse{PredictionResponse: *prediction}
	if s.spec.Version == scoring.VersionProductivity {
		total := domain.RoundScore(float64(out[0]) + float64(out[1]))
		resp.TotalScore = &total
	}
	return resp, nil
}

// labelOutput turns the raw output vector into the labeled structure
// matching the model version's semantics, rounded to one decimal.
func (s *predictionService) labelOutput(out []float32) (*domain.PredictionResponse, error) {
	if len(out) != s.spec.OutputArity {
		return nil, fmt.Errorf("model %s returned %d outputs, expected %d",
			s.spec.Version, len(out), s.spec.OutputArity)
	}

	resp := &domain.PredictionResponse{ModelVersion: s.spec.Version}
	switch s.spec.Version {
	case scoring.VersionProductivity:
		morning := domain.RoundScore(float64(out[0]))
		afternoon := domain.RoundScore(float64(out[1]))
		night := domain.RoundScore(float64(out[2]))
		resp.ProductivityMorning = &morning
		resp.ProductivityAfternoon = &afternoon
		resp.ProductivityNight = &night
	case scoring.VersionStress:
		stress := domain.RoundScore(float64(out[0]))
		resp.StressLevel = &stress
	}
	return resp, nil
}

func stressFeatures(duration, quality, activity, heartRate, steps, gender, age, disorder float64) []float32 {
	return []float32{
		float32(duration),
		float32(quality),
		float32(activity),
		float32(heartRate),
		float32(steps),
		float32(gender),
		float32(age),
		float32(disorder),
	}
}

func orDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
