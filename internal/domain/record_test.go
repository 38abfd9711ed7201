package domain

import (
	"testing"
	"time"
)

func TestWrapDuration(t *testing.T) {
	tests := []struct {
		name      string
		startHour float64
		endHour   float64
		want      float64
	}{
		{"overnight 23 to 7", 23, 7, 8},
		{"same-day 22 to 23.5", 22, 23.5, 1.5},
		{"quarter hours across midnight", 23.25, 6.75, 7.5},
		{"midnight start", 0, 8, 8},
		{"equal hours", 22, 22, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapDuration(tt.startHour, tt.endHour); got != tt.want {
				t.Errorf("WrapDuration(%v, %v) = %v, want %v", tt.startHour, tt.endHour, got, tt.want)
			}
		})
	}
}

func TestHourOfDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want float64
	}{
		{"on the hour", time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC), 22},
		{"half past", time.Date(2024, 3, 11, 22, 30, 0, 0, time.UTC), 22.5},
		{"quarter to", time.Date(2024, 3, 11, 6, 45, 0, 0, time.UTC), 6.75},
		{"midnight", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HourOfDay(tt.in); got != tt.want {
				t.Errorf("HourOfDay(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInternalWeekday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{"Monday", time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC), 0},
		{"Thursday", time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC), 3},
		{"Saturday", time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC), 5},
		{"Sunday", time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InternalWeekday(tt.in); got != tt.want {
				t.Errorf("InternalWeekday(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"no rounding needed", 4.2, 4.2},
		{"round down", 3.84, 3.8},
		{"round up", 3.87, 3.9},
		{"half rounds to even low", 4.25, 4.2},
		{"half rounds to even high", 3.75, 3.8},
		{"negative", -1.25, -1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundScore(tt.in); got != tt.want {
				t.Errorf("RoundScore(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		name string
		hour float64
		want string
	}{
		{"evening quarter", 22.75, "22:45"},
		{"morning half", 6.5, "06:30"},
		{"wraps past midnight", 25.25, "01:15"},
		{"exactly 24 wraps to zero", 24, "00:00"},
		{"minute carry", 21.999, "22:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClockString(tt.hour); got != tt.want {
				t.Errorf("ClockString(%v) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("23:15")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}
	if h != 23 || m != 15 {
		t.Errorf("ParseClock() = %d:%d, want 23:15", h, m)
	}

	if _, _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) expected error, got nil")
	}
	if _, _, err := ParseClock("not a time"); err == nil {
		t.Error("ParseClock(garbage) expected error, got nil")
	}
}

func TestCreateSleepRecordRequest_Interval(t *testing.T) {
	now := time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC)
	explicit := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       CreateSleepRecordRequest
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "overnight sleep defaults to yesterday",
			req:       CreateSleepRecordRequest{SleepTime: "23:15", WakeTime: "07:00"},
			wantStart: time.Date(2024, 3, 11, 23, 15, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 12, 7, 0, 0, 0, time.UTC),
		},
		{
			name:      "same-day nap keeps one date",
			req:       CreateSleepRecordRequest{SleepTime: "14:00", WakeTime: "15:30"},
			wantStart: time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 11, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "equal times roll the end a full day",
			req:       CreateSleepRecordRequest{SleepTime: "22:00", WakeTime: "22:00"},
			wantStart: time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 12, 22, 0, 0, 0, time.UTC),
		},
		{
			name:      "explicit date is truncated to midnight",
			req:       CreateSleepRecordRequest{SleepTime: "23:00", WakeTime: "06:00", Date: &explicit},
			wantStart: time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Interval(now)
			if err != nil {
				t.Fatalf("Interval() error = %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}

	bad := CreateSleepRecordRequest{SleepTime: "nope", WakeTime: "07:00"}
	if _, _, err := bad.Interval(now); err == nil {
		t.Error("Interval() with invalid sleepTime expected error, got nil")
	}
}

func TestSleepRecord_ToResponse(t *testing.T) {
	notes := "slept well"
	record := SleepRecord{
		ID:                    42,
		StartTime:             time.Date(2024, 3, 11, 23, 15, 0, 0, time.UTC),
		EndTime:               time.Date(2024, 3, 12, 7, 0, 0, 0, time.UTC),
		ProductivityMorning:   4,
		ProductivityAfternoon: 3,
		ProductivityNight:     2,
		Notes:                 &notes,
	}

	resp := record.ToResponse()
	if resp.ID != 42 {
		t.Errorf("ID = %d, want 42", resp.ID)
	}
	if resp.DurationInHours != 7.75 {
		t.Errorf("DurationInHours = %v, want 7.75", resp.DurationInHours)
	}
	if resp.Notes == nil || *resp.Notes != notes {
		t.Errorf("Notes = %v, want %q", resp.Notes, notes)
	}
}
