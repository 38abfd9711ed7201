package domain

// SleepRecordSummary is the compact per-record view handed to the LLM.
type SleepRecordSummary struct {
	Date                  string  `json:"date"`
	DurationInHours       float64 `json:"duration_in_hours"`
	ProductivityMorning   int     `json:"productivity_morning"`
	ProductivityAfternoon int     `json:"productivity_afternoon"`
	ProductivityNight     int     `json:"productivity_night"`
	Notes                 *string `json:"notes,omitempty"`
}

// InsightsContext is everything the LLM sees when generating insights:
// the recent sleep history plus the current model recommendation.
type InsightsContext struct {
	Records        []SleepRecordSummary       `json:"records"`
	Recommendation *SleepWindowRecommendation `json:"recommendation,omitempty"`
}
