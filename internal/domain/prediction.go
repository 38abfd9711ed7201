package domain

import "time"

// PredictRequest is the request body for predicting productivity (or
// stress) from a concrete sleep interval.
// @Description One sleep interval to run through the scoring model.
type PredictRequest struct {
	// Sleep start in RFC3339
	StartTime time.Time `json:"startTime" validate:"required" example:"2024-03-11T23:15:00Z"`
	// Sleep end in RFC3339 (must be after startTime)
	EndTime time.Time `json:"endTime" validate:"required,gtfield=StartTime" example:"2024-03-12T07:00:00Z"`
}

// PredictionResponse carries the labeled model output for one interval.
// Which fields are present depends on the active model version.
// @Description Per-period productivity forecast (productivity model) or stress level (stress model), one decimal place.
type PredictionResponse struct {
	ModelVersion          string   `json:"modelVersion" example:"v1"`
	ProductivityMorning   *float64 `json:"productivityMorning,omitempty" example:"4.2"`
	ProductivityAfternoon *float64 `json:"productivityAfternoon,omitempty" example:"3.8"`
	ProductivityNight     *float64 `json:"productivityNight,omitempty" example:"2.9"`
	StressLevel           *float64 `json:"stressLevel,omitempty" example:"5.4"`
}

// SimulateRequest is the request body for a single what-if scoring call.
// The productivity model reads startHour/endHour/dayOfWeek; the stress
// model reads the lifestyle fields, falling back to baseline values for
// any left unset.
// @Description Full feature set for the active model version.
type SimulateRequest struct {
	// Hour the sleep starts, as a float (22:30 -> 22.5)
	StartHour *float64 `json:"startHour,omitempty" validate:"omitempty,gte=0,lt=24" example:"22.5"`
	// Hour the sleep ends
	EndHour *float64 `json:"endHour,omitempty" validate:"omitempty,gte=0,lt=24" example:"6.5"`
	// Day of week, 0=Monday .. 6=Sunday
	DayOfWeek *int `json:"dayOfWeek,omitempty" validate:"omitempty,gte=0,lte=6" example:"2"`

	// Stress-model features
	SleepDuration         *float64 `json:"sleepDuration,omitempty" validate:"omitempty,gte=0,lte=24" example:"7.5"`
	QualityOfSleep        *float64 `json:"qualityOfSleep,omitempty" validate:"omitempty,gte=0,lte=10" example:"8"`
	PhysicalActivityLevel *float64 `json:"physicalActivityLevel,omitempty" validate:"omitempty,gte=0" example:"60"`
	HeartRate             *float64 `json:"heartRate,omitempty" validate:"omitempty,gt=0" example:"70"`
	DailySteps            *float64 `json:"dailySteps,omitempty" validate:"omitempty,gte=0" example:"8000"`
	GenderNum             *float64 `json:"genderNum,omitempty" validate:"omitempty,oneof=0 1" example:"1"`
	Age                   *float64 `json:"age,omitempty" validate:"omitempty,gt=0" example:"35"`
	DisorderNum           *float64 `json:"disorderNum,omitempty" validate:"omitempty,oneof=0 1 2" example:"0"`
}

// SimulationResponse extends the prediction payload with the combined
// morning+afternoon score the simulator UI displays.
// @Description Scoring result for a simulated input.
type SimulationResponse struct {
	PredictionResponse
	TotalScore *float64 `json:"totalScore,omitempty" example:"8.0"`
}

// SleepWindowRecommendation is the productivity-model recommendation:
// the sleep window whose predicted morning+afternoon score is highest.
// @Description Recommended bedtime and wake time.
type SleepWindowRecommendation struct {
	SleepAt         string  `json:"sleepAt" example:"22:45"`
	WakeAt          string  `json:"wakeAt" example:"06:30"`
	DurationInHours float64 `json:"durationInHours" example:"7.8"`
	// Day the recommendation applies to, 0=Monday .. 6=Sunday; absent
	// when the search was pinned to the current day
	DayOfWeek *int    `json:"dayOfWeek,omitempty" example:"4"`
	Score     float64 `json:"score" example:"8.4"`
}

// LifestyleRecommendation is the stress-model recommendation: the
// duration/quality/activity combination with the lowest predicted stress.
// @Description Recommended sleep duration, quality and activity targets.
type LifestyleRecommendation struct {
	SleepDuration         float64 `json:"sleepDuration" example:"8.0"`
	QualityOfSleep        float64 `json:"qualityOfSleep" example:"9.0"`
	PhysicalActivityLevel float64 `json:"physicalActivityLevel" example:"60"`
	PredictedStress       float64 `json:"predictedStress" example:"3.1"`
}

// RecommendationResponse is the result of the grid search for the
// active model version; exactly one of the two members is set.
// @Description Best candidate found by the recommendation sweep.
type RecommendationResponse struct {
	ModelVersion string                     `json:"modelVersion" example:"v1"`
	SleepWindow  *SleepWindowRecommendation `json:"sleepWindow,omitempty"`
	Lifestyle    *LifestyleRecommendation   `json:"lifestyle,omitempty"`
}

// ForecastSlot is one period of the dashboard forecast.
// @Description Productivity level and raw score for one period of the day.
type ForecastSlot struct {
	Level string `json:"level" example:"Alta"`
	Score int    `json:"score" example:"4"`
}

// DashboardForecast classifies the latest record's three ratings.
type DashboardForecast struct {
	Morning   ForecastSlot `json:"morning"`
	Afternoon ForecastSlot `json:"afternoon"`
	Night     ForecastSlot `json:"night"`
}

// DashboardRecommendation is the sleep window shown on the dashboard.
type DashboardRecommendation struct {
	SleepAt string `json:"sleepAt" example:"22:45"`
	WakeAt  string `json:"wakeAt" example:"06:30"`
}

// DashboardSummaryResponse is the response body for the dashboard summary.
// @Description Latest-record forecast plus the current sleep recommendation.
type DashboardSummaryResponse struct {
	Forecast       DashboardForecast       `json:"forecast"`
	Recommendation DashboardRecommendation `json:"recommendation"`
}

// InsightsResponse is the LLM-generated habits summary.
// @Description Narrative insights derived from recent records and the current recommendation.
type InsightsResponse struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}
