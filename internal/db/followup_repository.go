package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/dialr/internal/models"
)

// FollowUpRepository stores follow-ups in sqlite
type FollowUpRepository struct {
	db *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{db: db}
}

// Load returns all follow-ups in display order
func (r *FollowUpRepository) Load() ([]models.FollowUp, error) {
	var items []models.FollowUp
	if err := r.db.Order("position ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the stored follow-ups with items.
// Derived overdue is never written; it is stored as pending.
func (r *FollowUpRepository) Save(items []models.FollowUp) error {
	rows := make([]models.FollowUp, len(items))
	for i, f := range items {
		f.Position = i
		if f.Status != models.StatusCompleted {
			f.Status = models.StatusPending
		}
		rows[i] = f
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FollowUp{}).Error; err != nil {
			return fmt.Errorf("failed to clear follow-ups: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write follow-ups: %w", err)
		}
		return nil
	})
}
