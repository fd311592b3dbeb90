package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/dialr/internal/models"
)

// CallRepository stores the call history in sqlite
type CallRepository struct {
	db *gorm.DB
}

func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Load returns all call records in display order with their tags
func (r *CallRepository) Load() ([]models.CallRecord, error) {
	var records []models.CallRecord
	if err := r.db.Preload("Tags").Order("position ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save replaces the stored history with records, keeping their order
func (r *CallRepository) Save(records []models.CallRecord) error {
	rows := make([]models.CallRecord, len(records))
	for i, rec := range records {
		rec.Position = i
		rows[i] = rec
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM call_tags").Error; err != nil {
			return fmt.Errorf("failed to clear call tags: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.CallRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear call records: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write call records: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored call records
func (r *CallRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.CallRecord{}).Count(&n).Error
	return n, err
}
