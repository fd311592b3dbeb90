package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/dialr/internal/sample"
)

// SeedSample writes the demo call history and follow-ups into db
func SeedSample(db *gorm.DB, now time.Time) error {
	if err := NewCallRepository(db).Save(sample.Calls(now)); err != nil {
		return fmt.Errorf("failed to seed calls: %w", err)
	}
	if err := NewFollowUpRepository(db).Save(sample.FollowUps(now)); err != nil {
		return fmt.Errorf("failed to seed follow-ups: %w", err)
	}
	return nil
}
