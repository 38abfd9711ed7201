package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/somnolog/somnolog/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample sleep records. Safe to call
// multiple times; existing days are left untouched.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&domain.SleepRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 1; i <= seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		bedtime := time.Date(day.Year(), day.Month(), day.Day(), 21+rng.Intn(3), 15*rng.Intn(4), 0, 0, time.UTC)
		wakeup := bedtime.Add(time.Duration(6+rng.Intn(3))*time.Hour + time.Duration(15*rng.Intn(4))*time.Minute)

		record := domain.SleepRecord{
			StartTime:             bedtime,
			EndTime:               wakeup,
			ProductivityMorning:   1 + rng.Intn(5),
			ProductivityAfternoon: 1 + rng.Intn(5),
			ProductivityNight:     1 + rng.Intn(5),
		}

		if err := db.Where("start_time = ?", bedtime).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create sleep record: %w", err)
		}
	}

	logger.Info("seed completed", zap.Int("days", seededDays))
	return nil
}
