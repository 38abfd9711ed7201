package domain

import (
	"fmt"
	"math"
	"time"
)

// SleepRecord is a single tracked sleep session.
// @Description One night of sleep with subjective productivity ratings for the following day.
type SleepRecord struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	StartTime             time.Time `gorm:"not null;index:idx_sleep_records_start,sort:desc" json:"startTime"`
	EndTime               time.Time `gorm:"not null" json:"endTime"`
	ProductivityMorning   int       `gorm:"type:smallint;not null" json:"productivityMorning"`
	ProductivityAfternoon int       `gorm:"type:smallint;not null" json:"productivityAfternoon"`
	ProductivityNight     int       `gorm:"type:smallint;not null" json:"productivityNight"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// DurationInHours is derived from the stored timestamps, never persisted.
func (r *SleepRecord) DurationInHours() float64 {
	return r.EndTime.Sub(r.StartTime).Hours()
}

// CreateSleepRecordRequest is the request body for recording a sleep session.
// Times are wall-clock "HH:mm" strings; the session date defaults to yesterday.
// @Description Request payload for recording a sleep session.
type CreateSleepRecordRequest struct {
	// Time the user fell asleep, 24h "HH:mm"
	SleepTime string `json:"sleepTime" validate:"required,clocktime" example:"23:15"`
	// Time the user woke up, 24h "HH:mm"; earlier than sleepTime means next day
	WakeTime string `json:"wakeTime" validate:"required,clocktime" example:"07:00"`
	// Morning productivity rating, 1 (poor) to 5 (excellent)
	ProductivityMorning int `json:"productivityMorning" validate:"required,min=1,max=5" example:"4"`
	// Afternoon productivity rating, 1 to 5
	ProductivityAfternoon int `json:"productivityAfternoon" validate:"required,min=1,max=5" example:"3"`
	// Night productivity rating, 1 to 5
	ProductivityNight int `json:"productivityNight" validate:"required,min=1,max=5" example:"2"`
	// Date the sleep started on; defaults to yesterday when omitted
	Date *time.Time `json:"date,omitempty" example:"2024-03-11T00:00:00Z"`
	// Optional free-text notes (max 500 chars)
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// Interval resolves the request into concrete start/end timestamps.
// wakeTime at or before sleepTime rolls the end over to the next day.
func (req *CreateSleepRecordRequest) Interval(now time.Time) (start, end time.Time, err error) {
	sleepH, sleepM, err := ParseClock(req.SleepTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	wakeH, wakeM, err := ParseClock(req.WakeTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	day := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	if req.Date != nil {
		d := req.Date.UTC()
		day = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	start = day.Add(time.Duration(sleepH)*time.Hour + time.Duration(sleepM)*time.Minute)
	end = day.Add(time.Duration(wakeH)*time.Hour + time.Duration(wakeM)*time.Minute)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description Sleep session with its derived duration.
type SleepRecordResponse struct {
	ID                    uint      `json:"id" example:"42"`
	StartTime             time.Time `json:"startTime" example:"2024-03-11T23:15:00Z"`
	EndTime               time.Time `json:"endTime" example:"2024-03-12T07:00:00Z"`
	DurationInHours       float64   `json:"durationInHours" example:"7.75"`
	ProductivityMorning   int       `json:"productivityMorning" example:"4"`
	ProductivityAfternoon int       `json:"productivityAfternoon" example:"3"`
	ProductivityNight     int       `json:"productivityNight" example:"2"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt" example:"2024-03-12T07:05:00Z"`
}

// ToResponse builds a fresh response value; record instances are never
// mutated after creation.
func (r *SleepRecord) ToResponse() SleepRecordResponse {
	return SleepRecordResponse{
		ID:                    r.ID,
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		DurationInHours:       r.DurationInHours(),
		ProductivityMorning:   r.ProductivityMorning,
		ProductivityAfternoon: r.ProductivityAfternoon,
		ProductivityNight:     r.ProductivityNight,
		Notes:                 r.Notes,
		CreatedAt:             r.CreatedAt,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
// @Description Page of sleep records plus the total row count.
type SleepRecordListResponse struct {
	Items []SleepRecordResponse `json:"items"`
	Total int64                 `json:"total" example:"123"`
}

// ParseClock parses a 24h "HH:mm" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// HourOfDay returns the hour as a float, e.g. 22:30 -> 22.5.
func HourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// WrapDuration computes hours slept from hour-of-day values only,
// treating an end hour before the start hour as an overnight wrap.
func WrapDuration(startHour, endHour float64) float64 {
	if endHour < startHour {
		return 24 - startHour + endHour
	}
	return endHour - startHour
}

// InternalWeekday converts Go's Sunday-based weekday to the model's
// convention of 0=Monday .. 6=Sunday.
func InternalWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// RoundScore rounds a model output to one decimal place using
// round-half-to-even, matching how scores are reported everywhere.
func RoundScore(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// ClockString formats a float hour-of-day as "HH:MM", normalized into [0, 24).
func ClockString(hour float64) string {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h, m = (h+1)%24, 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
